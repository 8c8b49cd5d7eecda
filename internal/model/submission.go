package model

// ShortenRequest is the body sent to the shortening service.
// Optional fields are omitted from the JSON entirely when unset.
type ShortenRequest struct {
	URL             string `json:"url"`
	CustomCode      string `json:"custom_code,omitempty"`
	Title           string `json:"title,omitempty"`
	ExpireAfterDays *int   `json:"expire_after_days,omitempty"`
}

// ShortenResponse is the part of the service reply the client reads.
type ShortenResponse struct {
	ShortCode string `json:"short_code"`
}

// DisplayView exposes the result and error slots to a rendering layer.
// At most one of them is set.
type DisplayView struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
