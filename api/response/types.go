package response

import apperrors "tasklist/pkg/errors"

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// Response is the error envelope.
type Response struct {
	Success   bool                   `json:"success"`
	Error     string                 `json:"error,omitempty"`
	Code      int                    `json:"code"`
	Message   string                 `json:"message"`
	Details   []apperrors.FieldError `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}
