package httptest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	message, err := Parse("POST /upload HTTP/1.1\r\nHost: x\r\nContent-Length: 5\r\n\r\nhello")
	require.NoError(t, err)
	require.Equal(t, "POST", message.Method)
	require.Equal(t, "/upload", message.URL)
	require.Equal(t, "HTTP/1.1", message.Proto)
	require.Equal(t, "x", message.Headers.Value("host"))
	require.Equal(t, "hello", message.Body)
}

func TestParseResponse(t *testing.T) {
	message, err := Parse("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nok")
	require.NoError(t, err)
	require.Equal(t, 200, message.Code)
	require.Equal(t, "OK", message.Status)
	require.Equal(t, "ok", message.Body)
}

func TestParseChunkedBody(t *testing.T) {
	message, err := Parse("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhello\r\n0\r\n\r\n")
	require.NoError(t, err)
	require.Equal(t, "hello", message.Body)
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, raw := range []string{
		"",
		"GET /\r\n\r\n",
		"HTTP/1.1 abc OK\r\n\r\n",
		"GET / HTTP/1.1\r\nno-colon-here\r\n\r\n",
		"GET / HTTP/1.1\r\nContent-Length: 5\r\n\r\nab",
	} {
		_, err := Parse(raw)
		require.Error(t, err, "%q", raw)
	}
}
