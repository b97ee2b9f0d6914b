package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/handler"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/service/appointment"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/appointments")
	{
		grp.POST("", h.Create)
		grp.GET("", h.List)
		grp.DELETE("/:id", h.Cancel)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), handler.CurrentUser(c), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

func (h *Handler) List(c *gin.Context) {
	appointments, err := h.svc.List(c.Request.Context(), handler.CurrentUser(c).ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An id that is not a UUID can never match a row.
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Appointment not found"))
		return
	}

	if err := h.svc.Cancel(c.Request.Context(), id, handler.CurrentUser(c).ID); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}
