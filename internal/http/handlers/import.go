package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GylleadheBodedono/SCI/internal/http/response"
	apperrors "github.com/GylleadheBodedono/SCI/internal/pkg/errors"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
	"github.com/GylleadheBodedono/SCI/internal/services"
)

type ImportHandler struct {
	log      *logger.Logger
	importer services.ImportService
}

func NewImportHandler(log *logger.Logger, importer services.ImportService) *ImportHandler {
	return &ImportHandler{
		log:      log.With("handler", "ImportHandler"),
		importer: importer,
	}
}

// Import receives the platform export as multipart field "file" and runs the
// whole pipeline synchronously. The report is the response body.
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondServiceError(c, fmt.Errorf("%w: multipart field \"file\" is missing", apperrors.ErrNoFile))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer file.Close()

	report, err := h.importer.Run(c.Request.Context(), file)
	if err != nil {
		h.log.Error("Import failed", "file", fileHeader.Filename, "error", err)
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, report)
}
