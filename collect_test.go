package httpparser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbashore/http-parser/internal/httptest"
	methods "github.com/tbashore/http-parser/method"
)

func TestCollector(t *testing.T) {
	t.Run("headers keep order and duplicates", func(t *testing.T) {
		p, c := NewCollected(Request)
		feed(t, p, []byte("GET / HTTP/1.1\r\nAccept: text/html\r\nAccept: text/plain\r\nHost: x\r\n\r\n"), 1<<16)

		msg := c.Last()
		require.Equal(t, []string{"text/html", "text/plain"}, msg.Headers.Values("accept"))
		require.Equal(t, []string{"Accept", "Host"}, msg.Headers.Keys())
		require.Equal(t, 3, msg.Headers.Len())
	})

	t.Run("messages survive parser reuse", func(t *testing.T) {
		p, c := NewCollected(Request)
		feed(t, p, []byte("POST /a HTTP/1.1\r\nContent-Length: 2\r\n\r\naa"), 1<<16)
		feed(t, p, []byte("POST /b HTTP/1.1\r\nContent-Length: 2\r\n\r\nbb"), 1<<16)

		require.Len(t, c.Messages, 2)
		require.Equal(t, "/a", c.Messages[0].URL)
		require.Equal(t, "aa", string(c.Messages[0].Body))
		require.Equal(t, "/b", c.Messages[1].URL)
		require.Equal(t, "bb", string(c.Messages[1].Body))
	})
}

// The streaming parser and the naive buffering decoder must tell the same
// story about any complete message.
func TestAgainstReferenceDecoder(t *testing.T) {
	raws := []string{
		"GET /search?q=parsers HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n",
		"POST /upload HTTP/1.1\r\nContent-Length: 11\r\nContent-Type: text/plain\r\n\r\nhello world",
		"PUT /file HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n6\r\nabcdef\r\n0\r\n\r\n",
	}

	for _, raw := range raws {
		t.Run(raw[:8], func(t *testing.T) {
			oracle, err := httptest.Parse(raw)
			require.NoError(t, err)

			p, c := NewCollected(Request)
			feed(t, p, []byte(raw), 3)

			require.Len(t, c.Messages, 1)
			msg := c.Last()
			require.Equal(t, oracle.Method, msg.Method.String())
			require.Equal(t, oracle.URL, msg.URL)
			require.Equal(t, oracle.Proto, msg.Version.String())
			require.Equal(t, oracle.Body, string(msg.Body))

			for _, key := range oracle.Headers.Keys() {
				require.Equal(t, oracle.Headers.Value(key), msg.Headers.Value(key), "header %s", key)
			}
		})
	}
}

func TestCollectorScalars(t *testing.T) {
	p, c := NewCollected(Either)
	feed(t, p, []byte("HTTP/1.1 301 Moved Permanently\r\nLocation: /there\r\n\r\n"), 1<<16)

	msg := c.Last()
	require.Equal(t, uint16(301), msg.StatusCode)
	require.Equal(t, methods.Unknown, msg.Method)
	require.Equal(t, "/there", msg.Headers.Value("location"))
}
