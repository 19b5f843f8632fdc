package protocol

// ErrorCode classifies an error sent to the client.
type ErrorCode string

const (
	CodeUnknown         ErrorCode = "Unknown"
	CodeInvalidMessage  ErrorCode = "InvalidMessage"
	CodeHandlerNotFound ErrorCode = "HandlerNotFound"
	CodeHandlerPanic    ErrorCode = "HandlerPanic"
	CodeSessionClosed   ErrorCode = "SessionClosed"
	CodeServerError     ErrorCode = "ServerError"
)

func (c ErrorCode) String() string { return string(c) }

// ErrorMessage reports a failure to the client. After a fatal error the
// server closes the connection.
type ErrorMessage struct {
	Type    Type      `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Fatal   bool      `json:"fatal,omitempty"`
}

func NewError(code ErrorCode, message string) *ErrorMessage {
	return &ErrorMessage{Type: TypeError, Code: code, Message: message}
}

func NewFatalError(code ErrorCode, message string) *ErrorMessage {
	m := NewError(code, message)
	m.Fatal = true
	return m
}

func (m *ErrorMessage) Error() string { return string(m.Code) + ": " + m.Message }
