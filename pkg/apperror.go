package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// AppError is the HTTP-facing error shape shared by handlers: a stable
// machine-readable code, a human message and the status to respond with.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the JSON body written to the client. The wrapped
// cause is intentionally left out of the response.
func (e *AppError) ToHTTPError() gin.H {
	return gin.H{
		"code":    e.Code,
		"message": e.Message,
	}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
