package models

// APIError is the error detail embedded in every error response.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse is the envelope returned for any failed request.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// StatusResponse is returned by GET / when no frontend assets are present.
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// PingResponse is the liveness probe body.
type PingResponse struct {
	OK bool `json:"ok"`
}
