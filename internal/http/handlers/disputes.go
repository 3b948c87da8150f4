package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GylleadheBodedono/SCI/internal/dispute"
	"github.com/GylleadheBodedono/SCI/internal/http/response"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
	"github.com/GylleadheBodedono/SCI/internal/services"
)

type DisputeHandler struct {
	log     *logger.Logger
	records services.RecordsService
}

func NewDisputeHandler(log *logger.Logger, records services.RecordsService) *DisputeHandler {
	return &DisputeHandler{
		log:     log.With("handler", "DisputeHandler"),
		records: records,
	}
}

func (h *DisputeHandler) List(c *gin.Context) {
	records, err := h.records.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if records == nil {
		records = []*dispute.Record{}
	}
	response.RespondOK(c, gin.H{"disputes": records, "total": len(records)})
}

func (h *DisputeHandler) Create(c *gin.Context) {
	var in services.RecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rec, err := h.records.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, rec)
}

func (h *DisputeHandler) Update(c *gin.Context) {
	row, ok := rowParam(c)
	if !ok {
		return
	}
	var in services.RecordUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.records.Update(c.Request.Context(), row, in); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"row": row, "updated": true})
}

func (h *DisputeHandler) Delete(c *gin.Context) {
	row, ok := rowParam(c)
	if !ok {
		return
	}
	if err := h.records.Delete(c.Request.Context(), row); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"row": row, "deleted": true})
}

func rowParam(c *gin.Context) (int, bool) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_row", err)
		return 0, false
	}
	return row, true
}
