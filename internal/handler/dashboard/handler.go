package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/portal-api/internal/handler"
	"github.com/vitalsync/portal-api/internal/service/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/dashboard")
	{
		grp.GET("/stats", h.Stats)
	}
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), handler.CurrentUser(c).ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
