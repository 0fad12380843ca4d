// Package contracts holds the JSON request and response shapes of the SDB
// backend. The client and the stub server share them so both sides agree on
// field names and required fields.
package contracts

// Envelope is the {status, message} wrapper most endpoints return.
type Envelope struct {
	Status  string `json:"status" validate:"required"`
	Message string `json:"message,omitempty"`
}

// StatusOf exposes the envelope status of any response embedding Envelope.
func (e Envelope) StatusOf() (string, string) {
	return e.Status, e.Message
}

// Enveloped is implemented by every wrapped response.
type Enveloped interface {
	StatusOf() (status string, message string)
}

// ErrorBody is what the stub writes for non-2xx answers; the real backend
// uses the same message field.
type ErrorBody struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}
