package errs

const (
	BizCodeInvalidParams = 1001

	BizCodeUpstreamUnavailable = 7001
	BizCodeMalformedPayload    = 7002

	BizCodeEmptyVersion       = 8001
	BizCodeInsecureScheme     = 8002
	BizCodeDownloadInitiation = 8003
)
