// Package httpparser implements an incremental, callback-driven parser for
// HTTP/1.x messages. One Parser is bound to one logical byte stream and is
// fed arbitrary slices of it as they arrive; it reports URL, header and body
// spans through Hooks without buffering or allocating, and survives being
// suspended at any byte boundary. A single instance is reused across
// pipelined messages on the same stream.
package httpparser

import (
	"math"

	ascii "github.com/scott-ainsworth/go-ascii"

	"github.com/tbashore/http-parser/internal/chars"
	methods "github.com/tbashore/http-parser/method"
	"github.com/tbashore/http-parser/proto"
	"github.com/tbashore/http-parser/settings"
	"github.com/tbashore/http-parser/status"
)

// Kind tells the parser which side of the conversation it is reading.
type Kind uint8

const (
	// Request parses incoming requests.
	Request Kind = iota
	// Response parses incoming responses.
	Response
	// Either sniffs the first bytes and collapses to Request or Response.
	Either
)

const (
	cr = '\r'
	lf = '\n'

	noMark = -1

	maxContentLength = math.MaxInt64
)

const (
	literalConnection       = "connection"
	literalProxyConnection  = "proxy-connection"
	literalContentLength    = "content-length"
	literalTransferEncoding = "transfer-encoding"
	literalUpgrade          = "upgrade"
	literalChunked          = "chunked"
	literalKeepAlive        = "keep-alive"
	literalClose            = "close"
)

// Parser is a resumable HTTP/1.x message parser. It holds a few dozen bytes
// of state and no references to input buffers: all data leaves through the
// hooks, as sub-slices of the buffer currently passed to Execute.
type Parser struct {
	hooks    Hooks
	settings settings.Settings

	kind        Kind
	state       parserState
	headerState headerState
	flags       parserFlags

	// index walks the literal currently being matched: the method name
	// during the request line, a header name or value literal afterwards.
	index int
	// nread counts bytes consumed in the current header region.
	nread         int
	contentLength int64
	version       proto.Version
	statusCode    uint16
	method        methods.Method
	upgrade       bool

	code status.Code
	err  error

	urlMark   int
	fieldMark int
	valueMark int
	bodyMark  int
}

func New(kind Kind, hooks Hooks) *Parser {
	return NewWithSettings(kind, hooks, settings.Default())
}

func NewWithSettings(kind Kind, hooks Hooks, s settings.Settings) *Parser {
	p := &Parser{
		hooks:         hooks,
		settings:      settings.Fill(s),
		kind:          kind,
		contentLength: -1,
		urlMark:       noMark,
		fieldMark:     noMark,
		valueMark:     noMark,
		bodyMark:      noMark,
	}
	p.state = p.startState()

	return p
}

// Kind reports the parser's message direction. An Either parser reports the
// direction it collapsed to once the first message begins.
func (p *Parser) Kind() Kind {
	return p.kind
}

// Method is valid from headers-complete onward, requests only.
func (p *Parser) Method() methods.Method {
	return p.method
}

// StatusCode is valid from headers-complete onward, responses only.
func (p *Parser) StatusCode() uint16 {
	return p.statusCode
}

// Version is valid from headers-complete onward.
func (p *Parser) Version() proto.Version {
	return p.version
}

// Upgrade reports whether the last completed message ended in a protocol
// upgrade. The bytes following the message boundary are not HTTP and belong
// to the caller.
func (p *Parser) Upgrade() bool {
	return p.upgrade
}

// ErrorCode returns the sticky failure code, OK while the stream is healthy.
func (p *Parser) ErrorCode() status.Code {
	return p.code
}

// Err returns the sticky failure as an error, nil while the stream is
// healthy.
func (p *Parser) Err() error {
	return p.err
}

// ShouldKeepAlive tells whether the stream may carry another message after
// the current one completes. HTTP/1.1+ persists unless "close" was seen,
// older versions persist only on an explicit "keep-alive".
func (p *Parser) ShouldKeepAlive() bool {
	if p.version.KeepAliveDefault() {
		return p.flags&flagClose == 0
	}

	return p.flags&flagKeepAlive != 0
}

func (p *Parser) strict() bool {
	return p.settings.Strict
}

func (p *Parser) startState() parserState {
	switch p.kind {
	case Request:
		return eStartReq
	case Response:
		return eStartRes
	default:
		return eStartReqOrRes
	}
}

// newMessageState is entered after every completed message. In strict mode a
// non-persistent stream is poisoned so that any further byte fails.
func (p *Parser) newMessageState() parserState {
	if p.settings.Strict && !p.ShouldKeepAlive() {
		return eDead
	}

	return p.startState()
}

// restart wipes the per-message state. Called on the first byte of every
// message, before the message-begin hook.
func (p *Parser) restart() {
	p.flags = 0
	p.contentLength = -1
	p.version = proto.Version{}
	p.statusCode = 0
	p.method = methods.Unknown
	p.upgrade = false
	p.headerState = hGeneral
	p.index = 0
}

func (p *Parser) fail(code status.Code) error {
	p.code = code
	p.err = status.ErrorOf(code)
	p.state = eDead

	return p.err
}

// Execute feeds the next slice of the stream through the state machine and
// returns how many bytes were consumed. Zero-length input signals EOF.
//
// consumed < len(data) happens in exactly two cases: the parser failed (err
// is non-nil and sticky, the stream must be closed), or a message ended in
// an upgrade (Upgrade() is true and the tail bytes are the caller's).
func (p *Parser) Execute(data []byte) (consumed int, err error) {
	if p.code != status.OK {
		return 0, p.err
	}

	if len(data) == 0 {
		return 0, p.executeEOF()
	}

	// a span interrupted by the previous buffer boundary silently reopens
	// at the start of this one
	switch {
	case isURLState(p.state):
		p.urlMark = 0
	case p.state == eHeaderField:
		p.fieldMark = 0
	case p.state == eHeaderValue:
		p.valueMark = 0
	}

	for i := 0; i < len(data); i++ {
		ch := data[i]

		if parsingHeader(p.state) {
			p.nread++
			if p.nread > p.settings.MaxHeaderSize {
				return i, p.fail(status.HeaderOverflow)
			}
		}

	reexecute:
		switch p.state {
		case eDead:
			return i, p.fail(status.ClosedConnection)

		case eStartReqOrRes:
			if ch == cr || ch == lf {
				break
			}

			if ch == 'H' {
				p.restart()
				if err = p.onMessageBegin(); err != nil {
					return i, err
				}

				p.state = eResOrRespH
				break
			}

			p.kind = Request
			p.state = eStartReq
			goto reexecute

		case eResOrRespH:
			if ch == 'T' {
				p.kind = Response
				p.state = eResHT
				break
			}

			// HEAD is the only method starting with H
			if ch != 'E' {
				return i, p.fail(status.InvalidConstant)
			}

			p.kind = Request
			p.method = methods.HEAD
			p.index = 2
			p.state = eReqMethod

		case eStartRes:
			switch ch {
			case cr, lf:
			case 'H':
				p.restart()
				if err = p.onMessageBegin(); err != nil {
					return i, err
				}

				p.state = eResH
			default:
				return i, p.fail(status.InvalidConstant)
			}

		case eResH:
			if ch != 'T' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eResHT

		case eResHT:
			if ch != 'T' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eResHTT

		case eResHTT:
			if ch != 'P' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eResHTTP

		case eResHTTP:
			if ch != '/' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eResFirstHTTPMajor

		case eResFirstHTTPMajor:
			if !ascii.IsDigit(ch) {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Major = uint16(ch - '0')
			p.state = eResHTTPMajor

		case eResHTTPMajor:
			if ch == '.' {
				p.state = eResFirstHTTPMinor
				break
			}

			if !ascii.IsDigit(ch) {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Major = p.version.Major*10 + uint16(ch-'0')
			if p.version.Major > proto.MaxComponent {
				return i, p.fail(status.InvalidVersion)
			}

		case eResFirstHTTPMinor:
			if !ascii.IsDigit(ch) {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Minor = uint16(ch - '0')
			p.state = eResHTTPMinor

		case eResHTTPMinor:
			if ch == ' ' {
				p.state = eResFirstStatusCode
				break
			}

			if !ascii.IsDigit(ch) {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Minor = p.version.Minor*10 + uint16(ch-'0')
			if p.version.Minor > proto.MaxComponent {
				return i, p.fail(status.InvalidVersion)
			}

		case eResFirstStatusCode:
			if !ascii.IsDigit(ch) {
				if ch == ' ' {
					break
				}

				return i, p.fail(status.InvalidStatus)
			}

			p.statusCode = uint16(ch - '0')
			p.state = eResStatusCode

		case eResStatusCode:
			if !ascii.IsDigit(ch) {
				switch ch {
				case ' ':
					p.state = eResStatusStart
				case cr:
					p.state = eResLineAlmostDone
				case lf:
					p.state = eHeaderFieldStart
				default:
					return i, p.fail(status.InvalidStatus)
				}
				break
			}

			p.statusCode = p.statusCode*10 + uint16(ch-'0')
			if p.statusCode > 999 {
				return i, p.fail(status.InvalidStatus)
			}

		case eResStatusStart:
			switch ch {
			case cr:
				p.state = eResLineAlmostDone
			case lf:
				p.state = eHeaderFieldStart
			default:
				// reason phrase, ignored
				p.state = eResStatus
			}

		case eResStatus:
			switch ch {
			case cr:
				p.state = eResLineAlmostDone
			case lf:
				p.state = eHeaderFieldStart
			}

		case eResLineAlmostDone:
			if ch != lf {
				return i, p.fail(status.LFExpected)
			}
			p.state = eHeaderFieldStart

		case eStartReq:
			if ch == cr || ch == lf {
				break
			}

			p.restart()
			if err = p.onMessageBegin(); err != nil {
				return i, err
			}

			if !ascii.IsAlpha(ch) {
				return i, p.fail(status.InvalidMethod)
			}

			p.method = methods.Tentative(ch)
			if p.method == methods.Unknown {
				return i, p.fail(status.InvalidMethod)
			}

			p.index = 1
			p.state = eReqMethod

		case eReqMethod:
			lit := p.method.String()
			if ch == ' ' && p.index == len(lit) {
				p.state = eReqSpacesBeforeURL
				break
			}

			if p.index < len(lit) && ch == lit[p.index] {
				p.index++
				break
			}

			forked := methods.Fork(p.method, p.index, ch)
			if forked == methods.Unknown {
				return i, p.fail(status.InvalidMethod)
			}

			p.method = forked
			p.index++

		case eReqSpacesBeforeURL:
			if ch == ' ' {
				break
			}

			p.markURL(i)

			// CONNECT carries an authority, not a path
			if p.method == methods.CONNECT {
				if !chars.IsHostChar(ch, p.strict()) {
					return i, p.fail(status.InvalidURL)
				}

				p.state = eReqHost
				break
			}

			switch {
			case ch == '/' || ch == '*':
				p.state = eReqPath
			case ascii.IsAlpha(ch):
				p.state = eReqSchema
			default:
				return i, p.fail(status.InvalidURL)
			}

		case eReqSchema:
			if ascii.IsAlpha(ch) {
				break
			}

			if ch != ':' {
				return i, p.fail(status.InvalidURL)
			}
			p.state = eReqSchemaSlash

		case eReqSchemaSlash:
			if ch != '/' {
				return i, p.fail(status.InvalidURL)
			}
			p.state = eReqSchemaSlashSlash

		case eReqSchemaSlashSlash:
			if ch != '/' {
				return i, p.fail(status.InvalidURL)
			}
			p.state = eReqHost

		case eReqHost:
			if chars.IsHostChar(ch, p.strict()) {
				break
			}

			switch ch {
			case ':':
				p.state = eReqPort
			case '/':
				p.state = eReqPath
			case '?':
				p.state = eReqQueryStringStart
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidHost)
			}

		case eReqPort:
			if ascii.IsDigit(ch) {
				break
			}

			switch ch {
			case '/':
				p.state = eReqPath
			case '?':
				p.state = eReqQueryStringStart
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidPort)
			}

		case eReqPath:
			if chars.IsURLChar(ch, p.strict()) {
				break
			}

			switch ch {
			case '?':
				p.state = eReqQueryStringStart
			case '#':
				p.state = eReqFragmentStart
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidPath)
			}

		case eReqQueryStringStart:
			if chars.IsURLChar(ch, p.strict()) {
				p.state = eReqQueryString
				break
			}

			switch ch {
			case '?':
				// stray extra '?', tolerated
			case '#':
				p.state = eReqFragmentStart
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidQueryString)
			}

		case eReqQueryString:
			if chars.IsURLChar(ch, p.strict()) || ch == '?' {
				break
			}

			switch ch {
			case '#':
				p.state = eReqFragmentStart
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidQueryString)
			}

		case eReqFragmentStart:
			if chars.IsURLChar(ch, p.strict()) {
				p.state = eReqFragment
				break
			}

			switch ch {
			case '?':
				p.state = eReqFragment
			case '#':
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidFragment)
			}

		case eReqFragment:
			if chars.IsURLChar(ch, p.strict()) || ch == '?' || ch == '#' {
				break
			}

			switch ch {
			case ' ', cr, lf:
				if err = p.finishURL(data, i, ch); err != nil {
					return i, err
				}
			default:
				return i, p.fail(status.InvalidFragment)
			}

		case eReqHTTPStart:
			switch ch {
			case 'H':
				p.state = eReqHTTPH
			case ' ':
			default:
				return i, p.fail(status.InvalidConstant)
			}

		case eReqHTTPH:
			if ch != 'T' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eReqHTTPHT

		case eReqHTTPHT:
			if ch != 'T' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eReqHTTPHTT

		case eReqHTTPHTT:
			if ch != 'P' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eReqHTTPHTTP

		case eReqHTTPHTTP:
			if ch != '/' {
				return i, p.fail(status.InvalidConstant)
			}
			p.state = eReqFirstHTTPMajor

		case eReqFirstHTTPMajor:
			if ch < '1' || ch > '9' {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Major = uint16(ch - '0')
			p.state = eReqHTTPMajor

		case eReqHTTPMajor:
			if ch == '.' {
				p.state = eReqFirstHTTPMinor
				break
			}

			if !ascii.IsDigit(ch) {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Major = p.version.Major*10 + uint16(ch-'0')
			if p.version.Major > proto.MaxComponent {
				return i, p.fail(status.InvalidVersion)
			}

		case eReqFirstHTTPMinor:
			if !ascii.IsDigit(ch) {
				return i, p.fail(status.InvalidVersion)
			}

			p.version.Minor = uint16(ch - '0')
			p.state = eReqHTTPMinor

		case eReqHTTPMinor:
			switch {
			case ch == cr:
				p.state = eReqLineAlmostDone
			case ch == lf:
				if p.strict() {
					return i, p.fail(status.Strict)
				}
				p.state = eHeaderFieldStart
			case ascii.IsDigit(ch):
				p.version.Minor = p.version.Minor*10 + uint16(ch-'0')
				if p.version.Minor > proto.MaxComponent {
					return i, p.fail(status.InvalidVersion)
				}
			default:
				return i, p.fail(status.InvalidVersion)
			}

		case eReqLineAlmostDone:
			if ch != lf {
				return i, p.fail(status.LFExpected)
			}
			p.state = eHeaderFieldStart

		case eHeaderFieldStart:
			switch ch {
			case cr:
				p.state = eHeadersAlmostDone
			case lf:
				// a bare LF ends the header section just as well
				p.state = eHeadersAlmostDone
				goto reexecute
			default:
				c := chars.Token[ch]
				if c == 0 {
					return i, p.fail(status.InvalidHeaderToken)
				}

				p.markField(i)
				p.index = 0
				p.state = eHeaderField

				switch c {
				case 'c':
					p.headerState = hC
				case 'p':
					p.headerState = hMatchingProxyConnection
				case 't':
					p.headerState = hMatchingTransferEncoding
				case 'u':
					p.headerState = hMatchingUpgrade
				default:
					p.headerState = hGeneral
				}
			}

		case eHeaderField:
			if ch == ':' {
				if err = p.emitField(data, i); err != nil {
					return i, err
				}

				p.state = eHeaderValueStart
				break
			}

			c := chars.Token[ch]
			if c == 0 {
				if ch == ' ' && matchedFieldName(p.headerState) {
					break
				}

				return i, p.fail(status.InvalidHeaderToken)
			}

			switch p.headerState {
			case hGeneral:
			case hC:
				p.index++
				if c == 'o' {
					p.headerState = hCO
				} else {
					p.headerState = hGeneral
				}
			case hCO:
				p.index++
				if c == 'n' {
					p.headerState = hCON
				} else {
					p.headerState = hGeneral
				}
			case hCON:
				p.index++
				switch c {
				case 'n':
					p.headerState = hMatchingConnection
				case 't':
					p.headerState = hMatchingContentLength
				default:
					p.headerState = hGeneral
				}
			case hMatchingConnection:
				p.index++
				p.headerState = matchName(literalConnection, p.index, c, hConnection, hMatchingConnection)
			case hMatchingProxyConnection:
				p.index++
				// an alias of connection for keep-alive purposes
				p.headerState = matchName(literalProxyConnection, p.index, c, hConnection, hMatchingProxyConnection)
			case hMatchingContentLength:
				p.index++
				p.headerState = matchName(literalContentLength, p.index, c, hContentLength, hMatchingContentLength)
			case hMatchingTransferEncoding:
				p.index++
				p.headerState = matchName(literalTransferEncoding, p.index, c, hTransferEncoding, hMatchingTransferEncoding)
			case hMatchingUpgrade:
				p.index++
				p.headerState = matchName(literalUpgrade, p.index, c, hUpgrade, hMatchingUpgrade)
			case hConnection, hContentLength, hTransferEncoding, hUpgrade:
				// the name continues past the literal
				p.headerState = hGeneral
			default:
				p.headerState = hGeneral
			}

		case eHeaderValueStart:
			switch ch {
			case ' ', '\t':
			case cr:
				// empty value; a zero-length span keeps field/value
				// pairing unambiguous for consumers
				p.markValue(i)
				if err = p.emitValue(data, i); err != nil {
					return i, err
				}

				p.headerState = hGeneral
				p.state = eHeaderAlmostDone
			case lf:
				if p.strict() {
					return i, p.fail(status.Strict)
				}

				p.markValue(i)
				if err = p.emitValue(data, i); err != nil {
					return i, err
				}

				p.headerState = hGeneral
				p.state = eHeaderValueLWS
			default:
				p.markValue(i)
				p.index = 0
				p.state = eHeaderValue

				c := ch | 0x20
				switch p.headerState {
				case hUpgrade:
					p.flags |= flagUpgrade
					p.headerState = hGeneral
				case hTransferEncoding:
					if c == 'c' {
						p.headerState = hMatchingTransferEncodingChunked
					} else {
						p.headerState = hGeneral
					}
				case hContentLength:
					if !ascii.IsDigit(ch) {
						return i, p.fail(status.InvalidContentLength)
					}

					p.contentLength = int64(ch - '0')
				case hConnection:
					switch c {
					case 'k':
						p.headerState = hMatchingConnectionKeepAlive
					case 'c':
						p.headerState = hMatchingConnectionClose
					default:
						p.headerState = hGeneral
					}
				default:
					p.headerState = hGeneral
				}
			}

		case eHeaderValue:
			switch ch {
			case cr:
				if err = p.emitValue(data, i); err != nil {
					return i, err
				}

				p.applyValueEnd()
				p.state = eHeaderAlmostDone
			case lf:
				if p.strict() {
					return i, p.fail(status.Strict)
				}

				if err = p.emitValue(data, i); err != nil {
					return i, err
				}

				p.applyValueEnd()
				p.state = eHeaderValueLWS
			default:
				c := ch | 0x20
				switch p.headerState {
				case hGeneral:
				case hContentLength:
					if !ascii.IsDigit(ch) {
						return i, p.fail(status.InvalidContentLength)
					}

					d := int64(ch - '0')
					if p.contentLength > (maxContentLength-d)/10 {
						return i, p.fail(status.InvalidContentLength)
					}

					p.contentLength = p.contentLength*10 + d
				case hMatchingTransferEncodingChunked:
					p.index++
					p.headerState = matchName(literalChunked, p.index, c, hTransferEncodingChunked, hMatchingTransferEncodingChunked)
				case hMatchingConnectionKeepAlive:
					p.index++
					p.headerState = matchName(literalKeepAlive, p.index, c, hConnectionKeepAlive, hMatchingConnectionKeepAlive)
				case hMatchingConnectionClose:
					p.index++
					p.headerState = matchName(literalClose, p.index, c, hConnectionClose, hMatchingConnectionClose)
				case hTransferEncodingChunked, hConnectionKeepAlive, hConnectionClose:
					// trailing spaces keep a whole-value match alive
					if ch != ' ' {
						p.headerState = hGeneral
					}
				default:
					p.headerState = hGeneral
				}
			}

		case eHeaderAlmostDone:
			if ch != lf {
				return i, p.fail(status.LFExpected)
			}
			p.state = eHeaderValueLWS

		case eHeaderValueLWS:
			if ch == ' ' || ch == '\t' {
				// continuation line, folded into the current value
				p.state = eHeaderValueStart
				goto reexecute
			}

			p.state = eHeaderFieldStart
			goto reexecute

		case eHeadersAlmostDone:
			if ch != lf {
				return i, p.fail(status.LFExpected)
			}

			if p.flags&flagTrailing != 0 {
				// trailers after the last chunk end the message
				p.state = eMessageDone
				goto reexecute
			}

			if p.flags&flagUpgrade != 0 || p.method == methods.CONNECT {
				p.upgrade = true
			}

			if p.hooks.OnHeadersComplete != nil {
				skip, cbErr := p.hooks.OnHeadersComplete()
				if cbErr != nil {
					return i, p.fail(status.CBHeadersComplete)
				}
				if skip {
					p.flags |= flagSkipBody
				}
			}

			p.state = eHeadersDone
			goto reexecute

		case eHeadersDone:
			// the terminating LF, re-executed
			p.nread = 0

			switch {
			case p.upgrade:
				p.state = p.newMessageState()
				if err = p.messageComplete(); err != nil {
					return i, err
				}

				// the tail is not HTTP; hand it back
				return i + 1, nil
			case p.flags&flagSkipBody != 0:
				p.state = p.newMessageState()
				if err = p.messageComplete(); err != nil {
					return i, err
				}
			case p.flags&flagChunked != 0:
				p.state = eChunkSizeStart
			case p.contentLength == 0:
				p.state = p.newMessageState()
				if err = p.messageComplete(); err != nil {
					return i, err
				}
			case p.contentLength > 0:
				p.state = eBodyIdentity
			default:
				// no framing information at all
				if p.kind == Request || p.ShouldKeepAlive() {
					p.state = p.newMessageState()
					if err = p.messageComplete(); err != nil {
						return i, err
					}
				} else {
					p.state = eBodyIdentityEOF
				}
			}

		case eChunkSizeStart:
			v := chars.Unhex[ch]
			if v == -1 {
				return i, p.fail(status.InvalidChunkSize)
			}

			p.contentLength = int64(v)
			p.state = eChunkSize

		case eChunkSize:
			if ch == cr {
				p.state = eChunkSizeAlmostDone
				break
			}

			if ch == lf {
				if p.strict() {
					return i, p.fail(status.Strict)
				}

				p.state = eChunkSizeAlmostDone
				goto reexecute
			}

			v := chars.Unhex[ch]
			if v == -1 {
				if ch == ';' || ch == ' ' {
					p.state = eChunkParameters
					break
				}

				return i, p.fail(status.InvalidChunkSize)
			}

			if p.contentLength > (maxContentLength-int64(v))/16 {
				return i, p.fail(status.InvalidChunkSize)
			}

			p.contentLength = p.contentLength*16 + int64(v)

		case eChunkParameters:
			// chunk extensions are skipped, not validated
			switch ch {
			case cr:
				p.state = eChunkSizeAlmostDone
			case lf:
				if p.strict() {
					return i, p.fail(status.Strict)
				}

				p.state = eChunkSizeAlmostDone
				goto reexecute
			}

		case eChunkSizeAlmostDone:
			if ch != lf {
				return i, p.fail(status.LFExpected)
			}

			p.nread = 0

			if p.contentLength == 0 {
				p.flags |= flagTrailing
				p.state = eHeaderFieldStart
			} else {
				p.state = eChunkData
			}

		case eChunkData:
			toRead := min64(p.contentLength, int64(len(data)-i))
			p.markBody(i)
			p.contentLength -= toRead
			i += int(toRead) - 1

			if p.contentLength == 0 {
				if err = p.emitBody(data, i+1); err != nil {
					return i, err
				}

				p.state = eChunkDataAlmostDone
			}

		case eChunkDataAlmostDone:
			if ch == cr {
				p.state = eChunkDataDone
				break
			}

			if ch == lf && !p.strict() {
				p.state = eChunkSizeStart
				break
			}

			return i, p.fail(status.InvalidConstant)

		case eChunkDataDone:
			if ch != lf {
				return i, p.fail(status.LFExpected)
			}
			p.state = eChunkSizeStart

		case eBodyIdentity:
			toRead := min64(p.contentLength, int64(len(data)-i))
			p.markBody(i)
			p.contentLength -= toRead
			i += int(toRead) - 1

			if p.contentLength == 0 {
				if err = p.emitBody(data, i+1); err != nil {
					return i, err
				}

				p.state = eMessageDone
				goto reexecute
			}

		case eBodyIdentityEOF:
			// everything until the peer closes is body
			p.markBody(i)
			i = len(data) - 1

		case eMessageDone:
			p.state = p.newMessageState()
			if err = p.messageComplete(); err != nil {
				return i, err
			}

		default:
			return i, p.fail(status.InvalidInternalState)
		}
	}

	// flush the span still open at the buffer boundary; the state machine
	// reopens it on the next call
	if err = p.emitURL(data, len(data)); err != nil {
		return len(data), err
	}
	if err = p.emitField(data, len(data)); err != nil {
		return len(data), err
	}
	if err = p.emitValue(data, len(data)); err != nil {
		return len(data), err
	}
	if err = p.emitBody(data, len(data)); err != nil {
		return len(data), err
	}

	return len(data), nil
}

// executeEOF handles a zero-length Execute, the transport's end-of-stream
// signal.
func (p *Parser) executeEOF() error {
	switch p.state {
	case eBodyIdentityEOF:
		p.state = p.newMessageState()
		return p.messageComplete()
	case eDead, eStartReq, eStartRes, eStartReqOrRes:
		// a close between messages is a normal end of stream
		return nil
	default:
		return p.fail(status.InvalidEOFState)
	}
}

// finishURL emits the URL span and routes either to the version literal or,
// for HTTP/0.9, straight into the header region.
func (p *Parser) finishURL(data []byte, i int, ch byte) error {
	if err := p.emitURL(data, i); err != nil {
		return err
	}

	switch ch {
	case ' ':
		p.state = eReqHTTPStart
	case cr:
		p.version = proto.HTTP09
		p.state = eReqLineAlmostDone
	case lf:
		if p.strict() {
			return p.fail(status.Strict)
		}

		p.version = proto.HTTP09
		p.state = eHeaderFieldStart
	}

	return nil
}

func (p *Parser) applyValueEnd() {
	switch p.headerState {
	case hTransferEncodingChunked:
		p.flags |= flagChunked
	case hConnectionKeepAlive:
		p.flags |= flagKeepAlive
	case hConnectionClose:
		p.flags |= flagClose
	}
}

// matchName advances a streaming prefix match by one lowercased byte.
func matchName(lit string, index int, c byte, matched, matching headerState) headerState {
	if index >= len(lit) || c != lit[index] {
		return hGeneral
	}

	if index == len(lit)-1 {
		return matched
	}

	return matching
}

func (p *Parser) onMessageBegin() error {
	if p.hooks.OnMessageBegin == nil {
		return nil
	}

	if err := p.hooks.OnMessageBegin(); err != nil {
		return p.fail(status.CBMessageBegin)
	}

	return nil
}

func (p *Parser) messageComplete() error {
	if p.hooks.OnMessageComplete == nil {
		return nil
	}

	if err := p.hooks.OnMessageComplete(); err != nil {
		return p.fail(status.CBMessageComplete)
	}

	return nil
}

func (p *Parser) markURL(i int) {
	if p.urlMark == noMark {
		p.urlMark = i
	}
}

func (p *Parser) markField(i int) {
	if p.fieldMark == noMark {
		p.fieldMark = i
	}
}

func (p *Parser) markValue(i int) {
	if p.valueMark == noMark {
		p.valueMark = i
	}
}

func (p *Parser) markBody(i int) {
	if p.bodyMark == noMark {
		p.bodyMark = i
	}
}

func (p *Parser) emitURL(data []byte, end int) error {
	if p.urlMark == noMark {
		return nil
	}

	span := data[p.urlMark:end]
	p.urlMark = noMark

	if p.hooks.OnURL == nil {
		return nil
	}

	if err := p.hooks.OnURL(span); err != nil {
		return p.fail(status.CBURL)
	}

	return nil
}

func (p *Parser) emitField(data []byte, end int) error {
	if p.fieldMark == noMark {
		return nil
	}

	span := data[p.fieldMark:end]
	p.fieldMark = noMark

	if p.hooks.OnHeaderField == nil {
		return nil
	}

	if err := p.hooks.OnHeaderField(span); err != nil {
		return p.fail(status.CBHeaderField)
	}

	return nil
}

func (p *Parser) emitValue(data []byte, end int) error {
	if p.valueMark == noMark {
		return nil
	}

	span := data[p.valueMark:end]
	p.valueMark = noMark

	if p.hooks.OnHeaderValue == nil {
		return nil
	}

	if err := p.hooks.OnHeaderValue(span); err != nil {
		return p.fail(status.CBHeaderValue)
	}

	return nil
}

func (p *Parser) emitBody(data []byte, end int) error {
	if p.bodyMark == noMark {
		return nil
	}

	span := data[p.bodyMark:end]
	p.bodyMark = noMark

	if p.hooks.OnBody == nil {
		return nil
	}

	if err := p.hooks.OnBody(span); err != nil {
		return p.fail(status.CBBody)
	}

	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}
