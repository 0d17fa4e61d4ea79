package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeepAliveDefault(t *testing.T) {
	require.False(t, HTTP09.KeepAliveDefault())
	require.False(t, HTTP10.KeepAliveDefault())
	require.True(t, HTTP11.KeepAliveDefault())
	require.True(t, Version{1, 2}.KeepAliveDefault())
	require.True(t, Version{2, 0}.KeepAliveDefault())
}

func TestString(t *testing.T) {
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Equal(t, "HTTP/0.9", HTTP09.String())
	require.Equal(t, "HTTP/0.0", Version{}.String())
}
