// Package httptest decodes complete HTTP/1.x messages the naive, buffering
// way. Tests use it as an independent oracle: whatever the streaming parser
// reports for a message must agree with this decoder.
package httptest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/utils/uf"

	"github.com/tbashore/http-parser/internal/headers"
)

type Message struct {
	// Request line
	Method string
	URL    string
	// Status line
	Code   int
	Status string

	Proto   string
	Headers *headers.Headers
	Body    string
}

func NewMessage() Message {
	return Message{
		Headers: headers.New(),
	}
}

// Parse decodes a single complete message, request or response, from raw.
func Parse(raw string) (message Message, err error) {
	message = NewMessage()

	var line string
	line, raw, _ = strings.Cut(raw, "\r\n")
	if err = parseStartLine(&message, line); err != nil {
		return message, err
	}

	for {
		var headerLine string
		var found bool
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if len(headerLine) == 0 {
			break
		}
		if !found {
			return message, fmt.Errorf("bad header line %s: no breaking CRLF", headerLine)
		}

		key, value, err := parseHeaderLine(headerLine)
		if err != nil {
			return message, err
		}

		message.Headers.Add(key, value)
	}

	message.Body, err = processBody(message, raw)

	return message, err
}

func parseStartLine(message *Message, line string) error {
	first, rest, found := strings.Cut(line, " ")
	if !found {
		return fmt.Errorf("bad start line: %s", line)
	}

	if strings.HasPrefix(first, "HTTP/") {
		message.Proto = first

		code, status, _ := strings.Cut(rest, " ")
		n, err := strconv.Atoi(code)
		if err != nil {
			return fmt.Errorf("bad status code %s: %s", code, err)
		}

		message.Code = n
		message.Status = status

		return nil
	}

	message.Method = first
	message.URL, message.Proto, found = strings.Cut(rest, " ")
	if !found {
		return fmt.Errorf("bad request line: lacking protocol: %s", line)
	}

	return nil
}

func parseHeaderLine(line string) (key, value string, err error) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", fmt.Errorf("bad header %s: no colon", line)
	}

	return key, strings.TrimLeft(value, " \t"), nil
}

func processBody(message Message, data string) (string, error) {
	te := message.Headers.Values("transfer-encoding")
	if len(te) > 0 {
		if len(te) != 1 || te[0] != "chunked" {
			return "", fmt.Errorf("httptest: cannot process encodings: %s", strings.Join(te, ","))
		}

		_, hasTrailer := message.Headers.Get("trailer")

		return processChunkedBody(data, hasTrailer)
	}

	contentLengths := message.Headers.Values("content-length")
	switch len(contentLengths) {
	case 0:
		return data, nil
	case 1:
		length, err := strconv.Atoi(contentLengths[0])
		if err != nil {
			return "", err
		}

		return processPlainBody(data, length)
	default:
		return "", fmt.Errorf(
			"bad message: too many content-lengths: %s", strings.Join(contentLengths, ", "),
		)
	}
}

func processChunkedBody(data string, trailer bool) (string, error) {
	var buff []byte
	parser := chunkedbody.NewParser(chunkedbody.DefaultSettings())

	for len(data) > 0 {
		chunk, extra, err := parser.Parse(uf.S2B(data), trailer)
		if err != nil {
			return "", fmt.Errorf("bad chunked body: %s", err)
		}

		buff = append(buff, chunk...)
		data = string(extra)
	}

	return string(buff), nil
}

func processPlainBody(data string, length int) (string, error) {
	if len(data) != length {
		return "", fmt.Errorf("got %d bytes of body, content-length says %d", len(data), length)
	}

	return data, nil
}
