package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

// Response is the error envelope. Success payloads are returned raw.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps an application error to its HTTP status. Anything that is
// not an *AppError is a 500 with a generic message; the cause is logged, not
// leaked.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus(), NewErrorResponse(appErr.Message))
		return
	}

	log.Error().Err(err).
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Msg("request failed")
	c.JSON(500, NewErrorResponse("internal server error"))
}

// RespondBindError turns a gin binding failure into a readable 400.
func RespondBindError(c *gin.Context, err error) {
	c.JSON(400, NewErrorResponse(bindErrorMessage(err)))
}

func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
