package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/GylleadheBodedono/SCI/internal/http/response"
	"github.com/GylleadheBodedono/SCI/internal/platform/logger"
	"github.com/GylleadheBodedono/SCI/internal/services"
)

type DashboardHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:       log.With("handler", "DashboardHandler"),
		dashboard: dashboard,
	}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.dashboard.Build(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, d)
}
