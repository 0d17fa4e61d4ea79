package httpparser

// Hooks are the callback slots a parser reports through. Every slot is
// optional, a nil slot is skipped. Data hooks receive a sub-slice of the
// buffer passed to Execute, valid only for the duration of the call: copy
// before retaining. A single logical field may arrive over several
// invocations when it straddles buffer boundaries; consumers concatenate.
//
// Returning a non-nil error from any hook aborts parsing: the parser is
// poisoned with the matching callback code and Execute reports the number of
// bytes consumed up to the offending byte.
//
// Value recognition is a streaming whole-value match, so a list value such
// as "close, upgrade" does not set the close flag.
type Hooks struct {
	// OnMessageBegin fires when the first byte of a new message arrives.
	OnMessageBegin func() error
	// OnURL receives request-target bytes.
	OnURL func([]byte) error
	// OnHeaderField receives header name bytes, in both headers and
	// trailers.
	OnHeaderField func([]byte) error
	// OnHeaderValue receives header value bytes.
	OnHeaderValue func([]byte) error
	// OnHeadersComplete fires once the empty line ending the header section
	// is consumed. Returning skipBody = true declares that the message has
	// no body regardless of its framing headers, which is how a client
	// parser is told the message answers a HEAD request.
	OnHeadersComplete func() (skipBody bool, err error)
	// OnBody receives decoded body bytes: the identity body as-is, chunked
	// bodies with all the chunk framing stripped.
	OnBody func([]byte) error
	// OnMessageComplete fires at the message boundary.
	OnMessageComplete func() error
}
