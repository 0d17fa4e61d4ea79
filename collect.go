package httpparser

import (
	"errors"

	"github.com/indigo-web/utils/buffer"

	"github.com/tbashore/http-parser/internal/headers"
	methods "github.com/tbashore/http-parser/method"
	"github.com/tbashore/http-parser/proto"
	"github.com/tbashore/http-parser/settings"
)

// Message is an owned copy of one parsed message. Unlike hook spans, its
// fields survive past the Execute call that produced them.
type Message struct {
	Method     methods.Method
	URL        string
	Version    proto.Version
	StatusCode uint16
	Headers    *headers.Headers
	Body       []byte
	Upgrade    bool
	KeepAlive  bool
}

var errSpanOverflow = errors.New("span does not fit into the collector buffer")

// Collector assembles the spans of each message into Message values. It
// glues split spans back together across buffer boundaries, so it works with
// any feeding pattern, byte-by-byte included.
type Collector struct {
	// Messages holds every completed message in arrival order.
	Messages []Message
	// SkipNextBody is reported from the headers-complete hook, telling the
	// parser the message has no body. A client sets it before feeding a
	// response to a HEAD request. It applies to one message and is cleared
	// once reported.
	SkipNextBody bool

	parser *Parser
	cur    Message

	url       *buffer.Buffer
	field     *buffer.Buffer
	value     *buffer.Buffer
	inValue   bool
	inMessage bool
}

func NewCollector() *Collector {
	return &Collector{
		url:   buffer.New(128, 64*1024),
		field: buffer.New(64, 8*1024),
		value: buffer.New(128, settings.DefaultMaxHeaderSize),
	}
}

// NewCollected returns a parser wired to a fresh collector.
func NewCollected(kind Kind) (*Parser, *Collector) {
	c := NewCollector()
	p := New(kind, c.Hooks())
	c.parser = p

	return p, c
}

// Bind attaches the parser whose scalar readouts the collector snapshots.
// Required unless the collector came from NewCollected.
func (c *Collector) Bind(p *Parser) *Collector {
	c.parser = p
	return c
}

func (c *Collector) Hooks() Hooks {
	return Hooks{
		OnMessageBegin:    c.onMessageBegin,
		OnURL:             c.onURL,
		OnHeaderField:     c.onHeaderField,
		OnHeaderValue:     c.onHeaderValue,
		OnHeadersComplete: c.onHeadersComplete,
		OnBody:            c.onBody,
		OnMessageComplete: c.onMessageComplete,
	}
}

// Last returns the most recently completed message.
func (c *Collector) Last() Message {
	return c.Messages[len(c.Messages)-1]
}

func (c *Collector) onMessageBegin() error {
	c.cur = Message{Headers: headers.New()}
	c.url.Clear()
	c.field.Clear()
	c.value.Clear()
	c.inValue = false
	c.inMessage = true

	return nil
}

func (c *Collector) onURL(b []byte) error {
	if !c.url.Append(b) {
		return errSpanOverflow
	}

	return nil
}

func (c *Collector) onHeaderField(b []byte) error {
	if c.inValue {
		c.pushHeader()
	}

	if !c.field.Append(b) {
		return errSpanOverflow
	}

	return nil
}

func (c *Collector) onHeaderValue(b []byte) error {
	c.inValue = true

	if !c.value.Append(b) {
		return errSpanOverflow
	}

	return nil
}

func (c *Collector) onHeadersComplete() (bool, error) {
	if c.inValue {
		c.pushHeader()
	}

	c.cur.URL = string(c.url.Finish())
	c.cur.Method = c.parser.Method()
	c.cur.Version = c.parser.Version()
	c.cur.StatusCode = c.parser.StatusCode()

	skip := c.SkipNextBody
	c.SkipNextBody = false

	return skip, nil
}

func (c *Collector) onBody(b []byte) error {
	c.cur.Body = append(c.cur.Body, b...)
	return nil
}

func (c *Collector) onMessageComplete() error {
	if !c.inMessage {
		return nil
	}

	if c.inValue {
		// a trailer pair may still be pending
		c.pushHeader()
	}

	c.cur.Upgrade = c.parser.Upgrade()
	c.cur.KeepAlive = c.parser.ShouldKeepAlive()
	c.Messages = append(c.Messages, c.cur)
	c.inMessage = false

	return nil
}

func (c *Collector) pushHeader() {
	c.cur.Headers.Add(string(c.field.Finish()), string(c.value.Finish()))
	c.inValue = false
}
