package httpparser

type parserState uint8

// The order matters: every state up to and including eHeadersDone belongs to
// the header region, where each consumed byte counts against the header size
// limit. Chunk size lines sit inside that region on purpose.
const (
	eDead parserState = iota + 1

	eStartReqOrRes
	eResOrRespH
	eStartRes
	eResH
	eResHT
	eResHTT
	eResHTTP
	eResFirstHTTPMajor
	eResHTTPMajor
	eResFirstHTTPMinor
	eResHTTPMinor
	eResFirstStatusCode
	eResStatusCode
	eResStatusStart
	eResStatus
	eResLineAlmostDone

	eStartReq
	eReqMethod
	eReqSpacesBeforeURL
	eReqSchema
	eReqSchemaSlash
	eReqSchemaSlashSlash
	eReqHost
	eReqPort
	eReqPath
	eReqQueryStringStart
	eReqQueryString
	eReqFragmentStart
	eReqFragment
	eReqHTTPStart
	eReqHTTPH
	eReqHTTPHT
	eReqHTTPHTT
	eReqHTTPHTTP
	eReqFirstHTTPMajor
	eReqHTTPMajor
	eReqFirstHTTPMinor
	eReqHTTPMinor
	eReqLineAlmostDone

	eHeaderFieldStart
	eHeaderField
	eHeaderValueStart
	eHeaderValue
	eHeaderValueLWS
	eHeaderAlmostDone

	eChunkSizeStart
	eChunkSize
	eChunkParameters
	eChunkSizeAlmostDone

	eHeadersAlmostDone
	eHeadersDone

	eChunkData
	eChunkDataAlmostDone
	eChunkDataDone
	eBodyIdentity
	eBodyIdentityEOF
	eMessageDone
)

func parsingHeader(s parserState) bool {
	return s <= eHeadersDone
}

func isURLState(s parserState) bool {
	return s >= eReqSchema && s <= eReqFragment
}

// headerState is the sub-machine recognizing the framing-relevant header
// names and values in parallel with the main field/value states. Everything
// it does not care about collapses to hGeneral.
type headerState uint8

const (
	hGeneral headerState = iota
	hC
	hCO
	hCON
	hMatchingConnection
	hMatchingProxyConnection
	hMatchingContentLength
	hMatchingTransferEncoding
	hMatchingUpgrade
	hConnection
	hContentLength
	hTransferEncoding
	hUpgrade
	hMatchingTransferEncodingChunked
	hMatchingConnectionKeepAlive
	hMatchingConnectionClose
	hTransferEncodingChunked
	hConnectionKeepAlive
	hConnectionClose
)

// matchedFieldName reports whether the sub-state is an exact-length match of
// one of the recognized header names. Trailing spaces keep such a match.
func matchedFieldName(h headerState) bool {
	switch h {
	case hConnection, hContentLength, hTransferEncoding, hUpgrade:
		return true
	default:
		return false
	}
}

type parserFlags uint8

const (
	flagChunked parserFlags = 1 << iota
	flagKeepAlive
	flagClose
	flagTrailing
	flagUpgrade
	flagSkipBody
)
