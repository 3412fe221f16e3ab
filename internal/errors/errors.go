package errors

import (
	"fmt"
)

type Fields map[string]interface{}

// APIError is an error carrying an application error code, user-facing
// message and the HTTP status a route should respond with.
type APIError interface {
	error
	Code() int
	Message() string
	ExpectedHTTPStatus() int
	WithHTTPStatus(s int) APIError
	SetDetail(str string, a ...any) APIError
	SetFields(d Fields) APIError
	GetFields() Fields
}

type apiError struct {
	message        string
	code           int
	fields         Fields
	expectedStatus int
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s [%d]", e.message, e.code)
}

func (e *apiError) Message() string {
	return e.message
}

func (e *apiError) Code() int {
	return e.code
}

func (e *apiError) SetDetail(str string, a ...any) APIError {
	if len(a) > 0 {
		str = fmt.Sprintf(str, a...)
	}

	e.message = fmt.Sprintf("%s (%s)", e.message, str)

	return e
}

func (e *apiError) SetFields(d Fields) APIError {
	e.fields = d
	return e
}

func (e *apiError) GetFields() Fields {
	return e.fields
}

func (e *apiError) ExpectedHTTPStatus() int {
	return e.expectedStatus
}

func (e *apiError) WithHTTPStatus(s int) APIError {
	e.expectedStatus = s
	return e
}

func def(message string, code int, expectedStatus int) func() APIError {
	return func() APIError {
		return &apiError{
			message:        message,
			code:           code,
			fields:         Fields{},
			expectedStatus: expectedStatus,
		}
	}
}

// From wraps an arbitrary error into an APIError. Errors that already
// implement APIError pass through unchanged.
func From(err error) APIError {
	switch e := err.(type) {
	case APIError:
		return e
	default:
		return ErrInternalServerError().SetDetail(err.Error())
	}
}

var (
	// Generic client errors (70xxx)
	ErrUnauthorized     = def("Sign-In Required", 70401, 401)
	ErrInsufficientRole = def("Insufficient Privilege", 70403, 403)
	ErrLoginFailed      = def("Incorrect Username or Password", 70404, 401)
	ErrInvalidToken     = def("Invalid or Expired Token", 70410, 400)

	// Validation errors (71xxx)
	ErrInvalidRequest = def("Invalid Request", 71400, 400)
	ErrMissingField   = def("Missing Required Field", 71401, 400)
	ErrBadObjectID    = def("Bad Object ID", 71402, 400)
	ErrBadInt         = def("Bad Int", 71403, 400)
	ErrValidation     = def("Validation Failed", 71420, 400)

	// Resource errors (72xxx)
	ErrUnknownRoute     = def("Unknown Route", 72404, 404)
	ErrUnknownUser      = def("Unknown User", 72405, 404)
	ErrUnknownEmergency = def("Unknown Emergency", 72406, 404)
	ErrUserNameTaken    = def("Username Already Taken", 72409, 409)

	// Dispatch errors (73xxx)
	ErrNoAvailableEMP = def("No Available EMPs", 73404, 404)

	// Infrastructure errors (75xxx)
	ErrInternalServerError = def("Internal Server Error", 75500, 500)
	ErrStoreUnavailable    = def("Data Store Unavailable", 75503, 500)
	ErrGatewayUnavailable  = def("Notification Gateway Unavailable", 75504, 500)
)
