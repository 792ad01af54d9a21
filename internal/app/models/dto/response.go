package dto

// APIResponse is the standard success envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope around data.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse is the standard error envelope. Field tags validation and
// conflict errors with the offending input field; ErrorCode and Details are
// set by the storage-error translation layer.
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Field     string   `json:"field,omitempty"`
	ErrorCode string   `json:"errorCode,omitempty"`
	Details   []string `json:"details,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// NewErrorResponse creates an error envelope with a message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Message: message,
	}
}

// WithField tags the response with the offending input field.
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}

// WithErrorCode sets the machine-readable error code.
func (e *ErrorResponse) WithErrorCode(code string) *ErrorResponse {
	e.ErrorCode = code
	return e
}

// WithDetails attaches per-message details, e.g. schema violation messages.
func (e *ErrorResponse) WithDetails(details ...string) *ErrorResponse {
	e.Details = details
	return e
}

// WithError attaches the underlying error text for opaque server faults.
func (e *ErrorResponse) WithError(err string) *ErrorResponse {
	e.Error = err
	return e
}
