package httpparser

import (
	"testing"
)

var benchSink int

func BenchmarkExecute(b *testing.B) {
	nop := func([]byte) error { return nil }
	hooks := Hooks{OnURL: nop, OnHeaderField: nop, OnHeaderValue: nop, OnBody: nop}

	b.Run("simple GET", func(b *testing.B) {
		raw := []byte("GET /wp-content/uploads/2010/03/hello-kitty-darth-vader-pink.jpg HTTP/1.1\r\n" +
			"Host: www.kittyhell.com\r\n" +
			"User-Agent: Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10.6; ja-JP-mac; rv:1.9.2.3)\r\n" +
			"Accept: text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8\r\n" +
			"Accept-Language: ja,en-us;q=0.7,en;q=0.3\r\n" +
			"Accept-Encoding: gzip,deflate\r\n" +
			"Connection: keep-alive\r\n\r\n")
		parser := New(Request, hooks)
		b.SetBytes(int64(len(raw)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			consumed, err := parser.Execute(raw)
			if err != nil {
				b.Fatal(err)
			}
			benchSink += consumed
		}
	})

	b.Run("chunked response", func(b *testing.B) {
		raw := []byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n" +
			"19\r\nall your base are belong \r\n5\r\nto us\r\n0\r\n\r\n")
		parser := New(Response, hooks)
		b.SetBytes(int64(len(raw)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			consumed, err := parser.Execute(raw)
			if err != nil {
				b.Fatal(err)
			}
			benchSink += consumed
		}
	})
}
