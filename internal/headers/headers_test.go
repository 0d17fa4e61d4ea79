package headers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	h := New().
		Add("Host", "example.com").
		Add("Accept", "text/html").
		Add("accept", "text/plain")

	require.Equal(t, "example.com", h.Value("host"))
	require.Equal(t, "", h.Value("missing"))
	require.Equal(t, []string{"text/html", "text/plain"}, h.Values("ACCEPT"))
	require.Nil(t, h.Values("missing"))
	require.Equal(t, []string{"Host", "Accept"}, h.Keys())
	require.True(t, h.Has("aCCepT"))
	require.False(t, h.Has("cookie"))
	require.Equal(t, 3, h.Len())

	_, found := h.Get("missing")
	require.False(t, found)
}

func TestPairsKeepWireSpelling(t *testing.T) {
	h := New().
		Add("X-Trace-ID", "1").
		Add("host", "x")

	pairs := h.Pairs()
	require.Equal(t, []Pair{{"X-Trace-ID", "1"}, {"host", "x"}}, pairs)
}

func TestFold(t *testing.T) {
	require.Equal(t, "content-length", fold("Content-Length"))
	require.Equal(t, "content-length", fold("content-length"))
	require.Equal(t, "x-a1_b", fold("X-A1_B"))
	require.Equal(t, "", fold(""))
}
