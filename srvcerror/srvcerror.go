// Package srvcerror is the error type services return when the failure has a
// message meant for the client.
package srvcerror

import "net/http"

const ErrCodeInternalServerError = "internal_server_error"

// Error carries a machine readable code and a public message. The cause is
// kept for logs only.
type Error struct {
	code      string
	publicMsg string
	cause     error
	status    int // 0 reads as 500
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{code: errorCode, publicMsg: msgToUser}
}

// ErrInternal is a 500 with a route specific public message.
func ErrInternal(msgToUser string) *Error {
	return New(ErrCodeInternalServerError, msgToUser).
		SetHttpStatusCode(http.StatusInternalServerError)
}

func (e *Error) Error() string     { return e.publicMsg }
func (e *Error) ErrorCode() string { return e.code }
func (e *Error) DebugInfo() error  { return e.cause }
func (e *Error) Unwrap() error     { return e.cause }

// SetDebug attaches the underlying cause. It is logged, never sent to clients.
func (e *Error) SetDebug(err error) *Error {
	e.cause = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.status = code
	return e
}
