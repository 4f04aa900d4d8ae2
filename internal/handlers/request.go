package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/emilythestrangee/breadit-api/internal/errs"
	"github.com/emilythestrangee/breadit-api/internal/middleware"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("alphanumunderscore", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// bindJSON decodes and validates the body into T. Any failure comes back as *errs.ValidationError.
func bindJSON[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, validationError(err)
	}
	return req, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.Validation("invalid request body: %v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &errs.ValidationError{Message: strings.Join(msgs, "; ")}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "alphanumunderscore":
		return fe.Field() + " may only contain letters, numbers and underscores"
	default:
		return fmt.Sprintf("%s failed the %s check", fe.Field(), fe.Tag())
	}
}

// authenticate returns the caller's user id or writes a 401.
func authenticate(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(errs.ErrUnauthorized)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized."})
	}
	return userID, ok
}

// bind is bindJSON plus the 422 response.
func bind[T any](c *gin.Context) (T, bool) {
	req, err := bindJSON[T](c)
	if err == nil {
		return req, true
	}

	_ = c.Error(err)
	if errs.IsValidation(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request."})
	}
	return req, false
}

func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}

// serverError logs err and answers with a generic retry message; internals never reach the client.
func serverError(c *gin.Context, log *zap.Logger, msg string, err error, retry string) {
	fields := []zap.Field{zap.Error(err), zap.String("path", c.Request.URL.Path)}
	if errors.Is(err, errs.ErrTransient) || errors.Is(err, context.DeadlineExceeded) {
		log.Warn(msg, fields...)
	} else {
		log.Error(msg, fields...)
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": retry})
}
