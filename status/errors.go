package status

// Error carries a parse failure code. All errors reported by the parser are
// of this type, so callers may switch on ErrorCode(err) instead of comparing
// error values.
type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// ErrorCode extracts the Code from an error returned by the parser.
// Foreign errors map to Unknown, nil maps to OK.
func ErrorCode(err error) Code {
	if err == nil {
		return OK
	}

	if e, ok := err.(Error); ok {
		return e.Code
	}

	return Unknown
}

var (
	ErrCBMessageBegin    = NewError(CBMessageBegin, descriptions[CBMessageBegin])
	ErrCBURL             = NewError(CBURL, descriptions[CBURL])
	ErrCBHeaderField     = NewError(CBHeaderField, descriptions[CBHeaderField])
	ErrCBHeaderValue     = NewError(CBHeaderValue, descriptions[CBHeaderValue])
	ErrCBHeadersComplete = NewError(CBHeadersComplete, descriptions[CBHeadersComplete])
	ErrCBBody            = NewError(CBBody, descriptions[CBBody])
	ErrCBMessageComplete = NewError(CBMessageComplete, descriptions[CBMessageComplete])

	ErrInvalidEOFState      = NewError(InvalidEOFState, descriptions[InvalidEOFState])
	ErrHeaderOverflow       = NewError(HeaderOverflow, descriptions[HeaderOverflow])
	ErrClosedConnection     = NewError(ClosedConnection, descriptions[ClosedConnection])
	ErrInvalidVersion       = NewError(InvalidVersion, descriptions[InvalidVersion])
	ErrInvalidStatus        = NewError(InvalidStatus, descriptions[InvalidStatus])
	ErrInvalidMethod        = NewError(InvalidMethod, descriptions[InvalidMethod])
	ErrInvalidURL           = NewError(InvalidURL, descriptions[InvalidURL])
	ErrInvalidHost          = NewError(InvalidHost, descriptions[InvalidHost])
	ErrInvalidPort          = NewError(InvalidPort, descriptions[InvalidPort])
	ErrInvalidPath          = NewError(InvalidPath, descriptions[InvalidPath])
	ErrInvalidQueryString   = NewError(InvalidQueryString, descriptions[InvalidQueryString])
	ErrInvalidFragment      = NewError(InvalidFragment, descriptions[InvalidFragment])
	ErrLFExpected           = NewError(LFExpected, descriptions[LFExpected])
	ErrInvalidHeaderToken   = NewError(InvalidHeaderToken, descriptions[InvalidHeaderToken])
	ErrInvalidContentLength = NewError(InvalidContentLength, descriptions[InvalidContentLength])
	ErrInvalidChunkSize     = NewError(InvalidChunkSize, descriptions[InvalidChunkSize])
	ErrInvalidConstant      = NewError(InvalidConstant, descriptions[InvalidConstant])
	ErrInvalidInternalState = NewError(InvalidInternalState, descriptions[InvalidInternalState])
	ErrStrict               = NewError(Strict, descriptions[Strict])
	ErrUnknown              = NewError(Unknown, descriptions[Unknown])
)

// byCode is used to resolve a code back to its canonical error value.
var byCode = map[Code]error{
	CBMessageBegin:       ErrCBMessageBegin,
	CBURL:                ErrCBURL,
	CBHeaderField:        ErrCBHeaderField,
	CBHeaderValue:        ErrCBHeaderValue,
	CBHeadersComplete:    ErrCBHeadersComplete,
	CBBody:               ErrCBBody,
	CBMessageComplete:    ErrCBMessageComplete,
	InvalidEOFState:      ErrInvalidEOFState,
	HeaderOverflow:       ErrHeaderOverflow,
	ClosedConnection:     ErrClosedConnection,
	InvalidVersion:       ErrInvalidVersion,
	InvalidStatus:        ErrInvalidStatus,
	InvalidMethod:        ErrInvalidMethod,
	InvalidURL:           ErrInvalidURL,
	InvalidHost:          ErrInvalidHost,
	InvalidPort:          ErrInvalidPort,
	InvalidPath:          ErrInvalidPath,
	InvalidQueryString:   ErrInvalidQueryString,
	InvalidFragment:      ErrInvalidFragment,
	LFExpected:           ErrLFExpected,
	InvalidHeaderToken:   ErrInvalidHeaderToken,
	InvalidContentLength: ErrInvalidContentLength,
	InvalidChunkSize:     ErrInvalidChunkSize,
	InvalidConstant:      ErrInvalidConstant,
	InvalidInternalState: ErrInvalidInternalState,
	Strict:               ErrStrict,
	Unknown:              ErrUnknown,
}

// ErrorOf returns the canonical error value for the code, or nil for OK.
func ErrorOf(code Code) error {
	if code == OK {
		return nil
	}

	if err, ok := byCode[code]; ok {
		return err
	}

	return ErrUnknown
}
