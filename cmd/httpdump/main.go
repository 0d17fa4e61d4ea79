// httpdump reads a raw HTTP/1.x byte stream and prints what the parser sees
// as JSON lines: one object per callback by default, or one object per
// complete message with -messages. Handy for eyeballing how a capture is
// framed, and for exercising the library end to end.
package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/indigo-web/utils/uf"
	jsoniter "github.com/json-iterator/go"

	httpparser "github.com/tbashore/http-parser"
	"github.com/tbashore/http-parser/settings"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type event struct {
	Event      string `json:"event"`
	Data       string `json:"data,omitempty"`
	Method     string `json:"method,omitempty"`
	Version    string `json:"version,omitempty"`
	Status     uint16 `json:"status,omitempty"`
	KeepAlive  bool   `json:"keep_alive,omitempty"`
	Upgrade    bool   `json:"upgrade,omitempty"`
	TailOffset int    `json:"tail_offset,omitempty"`
}

type headerOut struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type messageOut struct {
	Method    string      `json:"method,omitempty"`
	URL       string      `json:"url,omitempty"`
	Version   string      `json:"version"`
	Status    uint16      `json:"status,omitempty"`
	Headers   []headerOut `json:"headers"`
	Body      string      `json:"body,omitempty"`
	KeepAlive bool        `json:"keep_alive"`
	Upgrade   bool        `json:"upgrade,omitempty"`
}

func main() {
	kindFlag := flag.String("kind", "request", "message direction: request, response or either")
	strict := flag.Bool("strict", false, "reject liberal inputs")
	messages := flag.Bool("messages", false, "print one object per message instead of the event trace")
	chunkSize := flag.Int("chunk", 4096, "read size, lower it to watch span re-emission")
	flag.Parse()

	var kind httpparser.Kind
	switch *kindFlag {
	case "request":
		kind = httpparser.Request
	case "response":
		kind = httpparser.Response
	case "either":
		kind = httpparser.Either
	default:
		log.Fatalf("unknown -kind: %s", *kindFlag)
	}

	input := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer func() { _ = file.Close() }()
		input = file
	}

	out := bufio.NewWriter(os.Stdout)
	defer func() { _ = out.Flush() }()

	s := settings.Settings{Strict: *strict}
	if *messages {
		dumpMessages(kind, s, input, out, *chunkSize)
	} else {
		dumpTrace(kind, s, input, out, *chunkSize)
	}
}

func emit(out *bufio.Writer, v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}

	line = append(line, '\n')
	_, err = out.Write(line)

	return err
}

func dumpTrace(kind httpparser.Kind, s settings.Settings, input io.Reader, out *bufio.Writer, chunkSize int) {
	var parser *httpparser.Parser
	parser = httpparser.NewWithSettings(kind, httpparser.Hooks{
		OnMessageBegin: func() error {
			return emit(out, event{Event: "message_begin"})
		},
		OnURL: func(b []byte) error {
			return emit(out, event{Event: "url", Data: uf.B2S(b)})
		},
		OnHeaderField: func(b []byte) error {
			return emit(out, event{Event: "header_field", Data: uf.B2S(b)})
		},
		OnHeaderValue: func(b []byte) error {
			return emit(out, event{Event: "header_value", Data: uf.B2S(b)})
		},
		OnHeadersComplete: func() (bool, error) {
			return false, emit(out, event{
				Event:     "headers_complete",
				Method:    parser.Method().String(),
				Version:   parser.Version().String(),
				Status:    parser.StatusCode(),
				KeepAlive: parser.ShouldKeepAlive(),
				Upgrade:   parser.Upgrade(),
			})
		},
		OnBody: func(b []byte) error {
			return emit(out, event{Event: "body", Data: uf.B2S(b)})
		},
		OnMessageComplete: func() error {
			return emit(out, event{Event: "message_complete"})
		},
	}, s)

	tail, upgraded := pump(parser, input, chunkSize)
	if upgraded {
		if err := emit(out, event{Event: "upgrade", TailOffset: tail}); err != nil {
			log.Fatal(err)
		}
	}
}

func dumpMessages(kind httpparser.Kind, s settings.Settings, input io.Reader, out *bufio.Writer, chunkSize int) {
	collector := httpparser.NewCollector()
	parser := httpparser.NewWithSettings(kind, collector.Hooks(), s)
	collector.Bind(parser)

	pump(parser, input, chunkSize)

	for _, msg := range collector.Messages {
		rendered := messageOut{
			Method:    msg.Method.String(),
			URL:       msg.URL,
			Version:   msg.Version.String(),
			Status:    msg.StatusCode,
			Headers:   make([]headerOut, 0, msg.Headers.Len()),
			Body:      string(msg.Body),
			KeepAlive: msg.KeepAlive,
			Upgrade:   msg.Upgrade,
		}
		for _, pair := range msg.Headers.Pairs() {
			rendered.Headers = append(rendered.Headers, headerOut{Key: pair.Key, Value: pair.Value})
		}

		if err := emit(out, rendered); err != nil {
			log.Fatal(err)
		}
	}
}

// pump drives the parser over the whole input. It returns early at an
// upgrade boundary, reporting the offset at which the stream stops being
// HTTP.
func pump(parser *httpparser.Parser, input io.Reader, chunkSize int) (tailOffset int, upgraded bool) {
	buff := make([]byte, chunkSize)
	offset := 0

	for {
		n, readErr := input.Read(buff)
		if n > 0 {
			consumed, err := parser.Execute(buff[:n])
			if err != nil {
				log.Fatalf("offset %d: %s: %s", offset+consumed, parser.ErrorCode(), err)
			}

			offset += consumed

			if consumed < n && parser.Upgrade() {
				return offset, true
			}
		}

		if readErr == io.EOF {
			if _, err := parser.Execute(nil); err != nil {
				log.Fatalf("offset %d: %s: %s", offset, parser.ErrorCode(), err)
			}

			return offset, false
		}
		if readErr != nil {
			log.Fatal(readErr)
		}
	}
}
