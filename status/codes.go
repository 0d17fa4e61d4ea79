package status

// Code identifies the reason a parser rejected its input. Once a parser
// reports any code other than OK it stays poisoned until re-created.
type Code uint8

const (
	OK Code = iota

	// callback-refused codes. The parser was fine with the input, but the
	// corresponding hook returned an error.
	CBMessageBegin
	CBURL
	CBHeaderField
	CBHeaderValue
	CBHeadersComplete
	CBBody
	CBMessageComplete

	InvalidEOFState
	HeaderOverflow
	ClosedConnection
	InvalidVersion
	InvalidStatus
	InvalidMethod
	InvalidURL
	InvalidHost
	InvalidPort
	InvalidPath
	InvalidQueryString
	InvalidFragment
	LFExpected
	InvalidHeaderToken
	InvalidContentLength
	InvalidChunkSize
	InvalidConstant
	InvalidInternalState
	Strict
	Unknown
)

var names = [...]string{
	OK:                   "OK",
	CBMessageBegin:       "CB_MESSAGE_BEGIN",
	CBURL:                "CB_URL",
	CBHeaderField:        "CB_HEADER_FIELD",
	CBHeaderValue:        "CB_HEADER_VALUE",
	CBHeadersComplete:    "CB_HEADERS_COMPLETE",
	CBBody:               "CB_BODY",
	CBMessageComplete:    "CB_MESSAGE_COMPLETE",
	InvalidEOFState:      "INVALID_EOF_STATE",
	HeaderOverflow:       "HEADER_OVERFLOW",
	ClosedConnection:     "CLOSED_CONNECTION",
	InvalidVersion:       "INVALID_VERSION",
	InvalidStatus:        "INVALID_STATUS",
	InvalidMethod:        "INVALID_METHOD",
	InvalidURL:           "INVALID_URL",
	InvalidHost:          "INVALID_HOST",
	InvalidPort:          "INVALID_PORT",
	InvalidPath:          "INVALID_PATH",
	InvalidQueryString:   "INVALID_QUERY_STRING",
	InvalidFragment:      "INVALID_FRAGMENT",
	LFExpected:           "LF_EXPECTED",
	InvalidHeaderToken:   "INVALID_HEADER_TOKEN",
	InvalidContentLength: "INVALID_CONTENT_LENGTH",
	InvalidChunkSize:     "INVALID_CHUNK_SIZE",
	InvalidConstant:      "INVALID_CONSTANT",
	InvalidInternalState: "INVALID_INTERNAL_STATE",
	Strict:               "STRICT",
	Unknown:              "UNKNOWN",
}

var descriptions = [...]string{
	OK:                   "success",
	CBMessageBegin:       "the on-message-begin callback failed",
	CBURL:                "the on-url callback failed",
	CBHeaderField:        "the on-header-field callback failed",
	CBHeaderValue:        "the on-header-value callback failed",
	CBHeadersComplete:    "the on-headers-complete callback failed",
	CBBody:               "the on-body callback failed",
	CBMessageComplete:    "the on-message-complete callback failed",
	InvalidEOFState:      "stream ended at an unexpected time",
	HeaderOverflow:       "too long header section",
	ClosedConnection:     "data received after a completed connection: close message",
	InvalidVersion:       "invalid HTTP version",
	InvalidStatus:        "invalid HTTP status code",
	InvalidMethod:        "invalid HTTP method",
	InvalidURL:           "invalid URL",
	InvalidHost:          "invalid host",
	InvalidPort:          "invalid port",
	InvalidPath:          "invalid path",
	InvalidQueryString:   "invalid query string",
	InvalidFragment:      "invalid fragment",
	LFExpected:           "LF character expected",
	InvalidHeaderToken:   "invalid character in header",
	InvalidContentLength: "invalid character in content-length header",
	InvalidChunkSize:     "invalid character in chunk size",
	InvalidConstant:      "invalid constant string",
	InvalidInternalState: "encountered unexpected internal state",
	Strict:               "strict mode assertion failed",
	Unknown:              "an unknown error occurred",
}

func (c Code) String() string {
	if int(c) >= len(names) {
		return names[Unknown]
	}

	return names[c]
}

// Description returns a human-readable explanation of the code.
func (c Code) Description() string {
	if int(c) >= len(descriptions) {
		return descriptions[Unknown]
	}

	return descriptions[c]
}
