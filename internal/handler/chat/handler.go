package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/portal-api/internal/handler"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/service/chat"
)

type Handler struct {
	svc *chat.Service
}

func NewHandler(svc *chat.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/ai")
	{
		grp.POST("/chat", h.Send)
		grp.GET("/chat-history", h.History)
	}
}

func (h *Handler) Send(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	resp, err := h.svc.Send(c.Request.Context(), handler.CurrentUser(c), req.Message)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) History(c *gin.Context) {
	history, err := h.svc.History(c.Request.Context(), handler.CurrentUser(c).ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
