package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/airlabs/air-tasks/internal/application"
	"github.com/airlabs/air-tasks/pkg/apperr"
	"github.com/airlabs/air-tasks/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ownerID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	stats, err := h.Svc.Stats(c.Request.Context(), ownerID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, apperr.HTTPStatus(err), apperr.Message(err), nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats}, "dashboard stats", nil)
}
