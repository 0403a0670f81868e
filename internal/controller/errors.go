// internal/controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"statusfeed/internal/apperrors"
	"statusfeed/internal/utils"
)

// respondDomainError maps a domain outcome to an HTTP response. Every
// outcome in the taxonomy has a stable status code; anything else is a
// storage or programming error and becomes a 500 without leaking detail.
func respondDomainError(ctx *gin.Context, err error) {
	if ve := apperrors.AsValidation(err); ve != nil {
		utils.ValidationFailed(ctx, ve.Field, ve.Reasons)
		return
	}

	var nf *apperrors.NotFoundError
	switch {
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		utils.Error(ctx, http.StatusConflict, apperrors.ErrDuplicateUsername.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		utils.Error(ctx, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
	case errors.As(err, &nf):
		utils.Error(ctx, http.StatusNotFound, nf.Error())
	default:
		utils.Error(ctx, http.StatusInternalServerError, "internal server error")
	}
}
