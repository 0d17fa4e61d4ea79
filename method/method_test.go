package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, m := range List {
		require.Equal(t, m, Parse(m.String()), m.String())
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, str := range []string{
		"", "G", "GE", "GETT", "get", "FOO", "COPYCAT", "M-SEARC", "PROPP",
		"UNSUB", "CONNECTX", "MKACTIVITYY",
	} {
		require.Equal(t, Unknown, Parse(str), str)
	}
}

func TestForks(t *testing.T) {
	cases := []struct {
		tentative Method
		index     int
		c         byte
		want      Method
	}{
		{CONNECT, 1, 'H', CHECKOUT},
		{CONNECT, 2, 'P', COPY},
		{MKCOL, 1, 'O', MOVE},
		{MKCOL, 1, 'E', MERGE},
		{MKCOL, 1, '-', MSEARCH},
		{MKCOL, 2, 'A', MKACTIVITY},
		{POST, 1, 'R', PROPFIND},
		{POST, 1, 'U', PUT},
		{POST, 1, 'A', PATCH},
		{PROPFIND, 4, 'P', PROPPATCH},
		{UNLOCK, 2, 'S', UNSUBSCRIBE},
		{GET, 1, 'X', Unknown},
		{CONNECT, 3, 'H', Unknown},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Fork(tc.tentative, tc.index, tc.c))
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "M-SEARCH", MSEARCH.String())
	require.Equal(t, "", Unknown.String())
	require.Equal(t, "", Method(200).String())
}

func TestTentativeCoversEveryFirstByte(t *testing.T) {
	seen := map[byte]bool{}
	for _, m := range List {
		seen[m.String()[0]] = true
	}

	for c := byte('A'); c <= 'Z'; c++ {
		if seen[c] {
			require.NotEqual(t, Unknown, Tentative(c), string(c))
		} else {
			require.Equal(t, Unknown, Tentative(c), string(c))
		}
	}
}
