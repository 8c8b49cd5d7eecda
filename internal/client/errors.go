package client

import "errors"

// RejectionMessage is shown for every non-success reply from the service.
// The reply body is never surfaced.
const RejectionMessage = "Failed to create short URL"

// ErrMissingShortCode is returned when a success reply carries no short_code.
var ErrMissingShortCode = errors.New("response is missing short_code")

// RejectionError reports a non-2xx reply from the shortening service.
type RejectionError struct {
	StatusCode int
}

func (e *RejectionError) Error() string {
	return RejectionMessage
}

// TransportError reports a call that could not complete: request
// construction, network failure or an unreadable reply. Its message is the
// underlying error's text, unchanged.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err is a service rejection.
func IsRejection(err error) bool {
	var rejection *RejectionError
	return errors.As(err, &rejection)
}
