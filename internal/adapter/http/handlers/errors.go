package handlers

import (
	"errors"
	"net/http"

	"coatingshop/internal/usecase"
	"coatingshop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errPermission     = pkg.NewDomainErrorSimple(usecase.CodePermissionDenied, "You are not allowed to perform this action", http.StatusForbidden)
	errAuthRequired   = pkg.NewDomainErrorSimple(usecase.CodeUnauthenticated, "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapAuthError maps typed authorization failures; nil when err is something else.
func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return errAuthRequired
	case errors.Is(err, usecase.ErrPermissionDenied):
		return errPermission
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred, please try again later", err, http.StatusInternalServerError)
}
