package api

import (
	"context"
	"errors"
	"net/http"

	"eiffel-bike-client/internal/handler/httperr"
	"eiffel-bike-client/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps the shared workflow sentinels onto HTTP statuses.
// Handlers add their own cases before falling through to this.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
	case errors.Is(err, errs.ErrAuthenticationFailed), errors.Is(err, errs.ErrNoSession):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Not authenticated")
	case errors.Is(err, errs.ErrSelfActionDenied):
		httperr.AbortWithError(c, http.StatusConflict, err, "You cannot do this with your own bike")
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found")
	case errors.Is(err, errs.ErrNetwork):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Backend unavailable, please retry")
	case errors.Is(err, context.DeadlineExceeded):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Backend did not respond in time")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
