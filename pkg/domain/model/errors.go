package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for webhook handling
var (
	ErrMalformedRequest = goerr.New("malformed request")
	ErrUpstreamFailure  = goerr.New("upstream request failed")
	ErrConfigMissing    = goerr.New("required configuration missing")
)
