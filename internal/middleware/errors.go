package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	internalMessage = "Something went very wrong!"
	viewErrorTitle  = "Something went wrong!"
	viewRetryLater  = "Please try again later."
	errorTemplate   = "error.html"
)

var operational = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrDuplicate, http.StatusBadRequest},
	{domain.ErrMissingCredentials, http.StatusBadRequest},
	{domain.ErrResetTokenInvalid, http.StatusBadRequest},
	{domain.ErrPasswordRoute, http.StatusBadRequest},
	{domain.ErrNotAnImage, http.StatusBadRequest},
	{domain.ErrInvalidLatLng, http.StatusBadRequest},
	{domain.ErrCheckoutInvalid, http.StatusBadRequest},

	{domain.ErrNotLoggedIn, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrTokenExpired, http.StatusUnauthorized},
	{domain.ErrUserGone, http.StatusUnauthorized},
	{domain.ErrPasswordChanged, http.StatusUnauthorized},
	{domain.ErrIncorrectCredentials, http.StatusUnauthorized},
	{domain.ErrWrongPassword, http.StatusUnauthorized},

	{domain.ErrForbidden, http.StatusForbidden},

	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrTourNotFound, http.StatusNotFound},
	{domain.ErrNoUserWithEmail, http.StatusNotFound},

	{domain.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{domain.ErrRateLimited, http.StatusTooManyRequests},

	{domain.ErrEmailDelivery, http.StatusInternalServerError},
	{domain.ErrRouteNotDefined, http.StatusInternalServerError},
}

// Classify maps err to a response status and client message. Errors that are
// not operational get a generic message.
func Classify(err error) (status int, message string, isOperational bool) {
	var (
		invalid *domain.InvalidInputError
		cast    *domain.CastError
		dup     *domain.DuplicateError
		noRoute *domain.RouteNotFoundError
	)
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Error(), true
	case errors.As(err, &cast):
		return http.StatusBadRequest, cast.Error(), true
	case errors.As(err, &dup):
		return http.StatusBadRequest, dup.Error(), true
	case errors.As(err, &noRoute):
		return http.StatusNotFound, noRoute.Error(), true
	}

	for _, o := range operational {
		if errors.Is(err, o.err) {
			return o.status, o.err.Error(), true
		}
	}
	return http.StatusInternalServerError, internalMessage, false
}

// ErrorHandler renders the last error attached to the context. API paths get
// JSON; every other path gets the error page.
func ErrorHandler(log logger.Logger, production bool) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, message, isOperational := Classify(err)

		if isOperational {
			log.LogAttrs(c.Request.Context(), logger.DebugLevel, "request failed",
				logger.String("request_id", RequestIDFrom(c)),
				logger.Int("status", status),
				logger.String("error", err.Error()),
			)
		} else {
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "unexpected error",
				logger.String("request_id", RequestIDFrom(c)),
				logger.String("path", c.Request.URL.Path),
				logger.String("error", err.Error()),
			)
		}

		if c.Writer.Written() {
			return
		}

		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			msg := message
			if !isOperational && !production {
				msg = err.Error()
			}
			if !isOperational && production {
				msg = viewRetryLater
			}
			c.HTML(status, errorTemplate, ginext.H{
				"title": viewErrorTitle,
				"msg":   msg,
			})
			return
		}

		if production {
			c.JSON(status, ginext.H{
				"status":  statusText(status),
				"message": message,
			})
			return
		}

		if !isOperational {
			message = err.Error()
		}
		c.JSON(status, ginext.H{
			"status":  statusText(status),
			"error":   err.Error(),
			"message": message,
		})
	}
}

func statusText(status int) string {
	if status >= http.StatusInternalServerError {
		return "error"
	}
	return "fail"
}
