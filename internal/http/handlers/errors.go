package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GylleadheBodedono/SCI/internal/http/response"
	apperrors "github.com/GylleadheBodedono/SCI/internal/pkg/errors"
)

// respondServiceError maps service sentinels to HTTP statuses. Anything not
// recognized is a store failure and comes back as 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoFile):
		response.RespondError(c, http.StatusBadRequest, "no_file", err)
	case errors.Is(err, apperrors.ErrEmptySheet):
		response.RespondError(c, http.StatusBadRequest, "empty_sheet", err)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.Is(err, apperrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "ledger_error", err)
	}
}
