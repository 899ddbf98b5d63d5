package slack

import "errors"

// Slack error sentinels.
var (
	// Web API errors
	ErrAPI = errors.New("slack api error")

	// Request signature errors
	ErrMissingSignature = errors.New("missing slack signature headers")
	ErrStaleRequest     = errors.New("slack request timestamp outside allowed window")
	ErrBadSignature     = errors.New("slack signature mismatch")
)
