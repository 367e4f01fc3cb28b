package response

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	MsgInternal           = "Internal server error"
	MsgInvalidBody        = "Invalid request body"
	MsgCouldNotValidate   = "Could not validate credentials"
	MsgValidationFailed   = "Validation failed"
	MsgBadLoginCredential = "Incorrect username or password"
)

// Success writes a bare JSON body with the given status.
func Success(c *gin.Context, code int, body any) {
	c.JSON(code, body)
}

// Message writes {"message": msg} with status 200.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// ErrorResponse writes the error envelope and aborts the chain.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewError(code, message))
}

// Unauthorized writes a 401 carrying the bearer challenge header.
func Unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	ErrorResponse(c, http.StatusUnauthorized, message)
}

// InternalError logs err and writes a generic 500. Details never reach the client.
func InternalError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	ErrorResponse(c, http.StatusInternalServerError, MsgInternal)
}

// BindError turns a gin binding failure into a 422 with per-field messages.
func BindError(c *gin.Context, err error) {
	body := NewError(http.StatusUnprocessableEntity, MsgValidationFailed)

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			body.Errors = append(body.Errors, FieldError{
				Field:   fieldPath(fe),
				Message: fieldMessage(fe),
			})
		}
	case errors.Is(err, io.EOF):
		body.Detail = "Request body is empty"
	default:
		body.Detail = MsgInvalidBody
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, body)
}

// fieldPath drops the root struct name from the validator namespace, so
// "PlayCreateRequest.frame_data[0].pieces[1].x" becomes "frame_data[0].pieces[1].x".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "nospace":
		return "must not contain whitespace"
	case "unique":
		return fmt.Sprintf("duplicate %s values", strings.ToLower(fe.Param()))
	case "min":
		if isString(fe) {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isString(fe) {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func isString(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}
