package adapter

import "errors"

var (
	ErrRemoteUnavailable = errors.New("value service unavailable")
	ErrRemoteBadResponse = errors.New("value service bad response")

	ErrNotFound     = errors.New("value not found")
	ErrServerError  = errors.New("value service server error")
	ErrRedirect     = errors.New("value service redirect not followed")
	ErrInvalidBody  = errors.New("invalid response body")
	ErrMissingField = errors.New("missing response field")
)
