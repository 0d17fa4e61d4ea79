package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownCodes = []Code{
	OK, CBMessageBegin, CBURL, CBHeaderField, CBHeaderValue,
	CBHeadersComplete, CBBody, CBMessageComplete, InvalidEOFState,
	HeaderOverflow, ClosedConnection, InvalidVersion, InvalidStatus,
	InvalidMethod, InvalidURL, InvalidHost, InvalidPort, InvalidPath,
	InvalidQueryString, InvalidFragment, LFExpected, InvalidHeaderToken,
	InvalidContentLength, InvalidChunkSize, InvalidConstant,
	InvalidInternalState, Strict, Unknown,
}

func TestNamesAndDescriptions(t *testing.T) {
	seen := map[string]bool{}

	for _, code := range knownCodes {
		require.NotEmpty(t, code.String())
		require.NotEmpty(t, code.Description())
		require.False(t, seen[code.String()], code.String())
		seen[code.String()] = true
	}

	require.Equal(t, "UNKNOWN", Code(250).String())
	require.Equal(t, Unknown.Description(), Code(250).Description())
}

func TestErrorOf(t *testing.T) {
	require.NoError(t, ErrorOf(OK))

	for _, code := range knownCodes[1:] {
		err := ErrorOf(code)
		require.Error(t, err)
		require.Equal(t, code, ErrorCode(err))
		require.Equal(t, code.Description(), err.Error())
	}

	require.Equal(t, ErrUnknown, ErrorOf(Code(250)))
}

func TestErrorCodeForeignError(t *testing.T) {
	require.Equal(t, OK, ErrorCode(nil))
	require.Equal(t, Unknown, ErrorCode(errors.New("not a parse error")))
}
