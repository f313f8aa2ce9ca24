package models

// OKResponse is returned by operations that have no payload of their own.
type OKResponse struct {
	OK bool `json:"ok"`
}

// TokenResponse carries a freshly issued bearer credential.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform failure envelope written for every error.
//
// Message is either a plain string or, for validation failures, the list of
// field violations. Stack is only populated outside production.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorResponseStatusFail is the only value ErrorResponse.Status takes.
const ErrorResponseStatusFail = "fail"
