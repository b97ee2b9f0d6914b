package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/portal-api/internal/handler"
	"github.com/vitalsync/portal-api/internal/service/doctor"
)

type Handler struct {
	svc *doctor.Service
}

func NewHandler(svc *doctor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/doctors")
	{
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
	}
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Query("specialty")))
}

func (h *Handler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
