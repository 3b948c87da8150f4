package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GylleadheBodedono/SCI/internal/http/response"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
	"github.com/GylleadheBodedono/SCI/internal/services"
)

type MaintenanceHandler struct {
	log         *logger.Logger
	maintenance services.MaintenanceService
}

func NewMaintenanceHandler(log *logger.Logger, maintenance services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		log:         log.With("handler", "MaintenanceHandler"),
		maintenance: maintenance,
	}
}

func (h *MaintenanceHandler) AnalyzeNormalization(c *gin.Context) {
	analysis, err := h.maintenance.AnalyzeNormalization(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, analysis)
}

func (h *MaintenanceHandler) ApplyNormalization(c *gin.Context) {
	result, err := h.maintenance.ApplyNormalization(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *MaintenanceHandler) AnalyzeDuplicates(c *gin.Context) {
	groups, err := h.maintenance.AnalyzeDuplicates(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if groups == nil {
		groups = []services.DuplicateGroup{}
	}
	response.RespondOK(c, gin.H{"groups": groups, "total": len(groups)})
}

// RemoveDuplicates accepts {"rows": [..]} with the physical rows to delete.
// An empty or absent list keeps the first member of every group and deletes
// the rest.
func (h *MaintenanceHandler) RemoveDuplicates(c *gin.Context) {
	var body struct {
		Rows []int `json:"rows"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
	}
	result, err := h.maintenance.RemoveDuplicates(c.Request.Context(), body.Rows)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (h *MaintenanceHandler) AnalyzeBlankRows(c *gin.Context) {
	blanks, err := h.maintenance.AnalyzeBlankRows(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if blanks == nil {
		blanks = []services.BlankRow{}
	}
	response.RespondOK(c, gin.H{"blankRows": blanks, "total": len(blanks)})
}

func (h *MaintenanceHandler) RemoveBlankRows(c *gin.Context) {
	result, err := h.maintenance.RemoveBlankRows(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}
