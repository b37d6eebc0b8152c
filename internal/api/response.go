package api

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Response is the uniform success envelope every endpoint returns.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// NewResponse builds a success envelope; Success reflects whether the
// status code is below 400.
func NewResponse(statusCode int, data interface{}, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < http.StatusBadRequest,
	}
}

// Error is the uniform failure envelope. It satisfies the error
// interface so handlers can hand it to gin's error list and let the
// envelope middleware render it.
type Error struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Stack      string   `json:"stack,omitempty"`
	Success    bool     `json:"success"`
}

// NewError builds a failure envelope with the given status and message.
func NewError(statusCode int, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Errors:     []string{},
		Success:    false,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// ErrorEnvelope renders the first error a handler attached to the
// context as the uniform failure envelope. Errors that are not *Error
// become a 500. Outside release mode the envelope carries the stack of
// the rendering site.
func ErrorEnvelope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors[0].Err
		apiErr, ok := err.(*Error)
		if !ok {
			logrus.WithError(err).Error("unhandled error reached envelope middleware")
			apiErr = NewError(http.StatusInternalServerError, err.Error())
		}
		if apiErr.Errors == nil {
			apiErr.Errors = []string{}
		}
		if gin.Mode() != gin.ReleaseMode {
			apiErr.Stack = string(debug.Stack())
		}

		c.JSON(apiErr.StatusCode, apiErr)
	}
}
