package response

// Body is the envelope every service answers with: a code mirroring the HTTP
// status, an optional human-readable message and an optional payload.
type Body struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success wraps data in the standard envelope.
func Success(code int, data interface{}) Body {
	return Body{Code: code, Data: data}
}

// SuccessMessage wraps data together with a human-readable message.
func SuccessMessage(code int, message string, data interface{}) Body {
	return Body{Code: code, Message: message, Data: data}
}

// Error wraps an error message in the standard envelope.
func Error(code int, message string) Body {
	return Body{Code: code, Message: message}
}
