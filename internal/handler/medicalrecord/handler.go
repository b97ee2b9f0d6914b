package medicalrecord

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/handler"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/service/medicalrecord"
)

type Handler struct {
	svc *medicalrecord.Service
}

func NewHandler(svc *medicalrecord.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grp := r.Group("/medical-records")
	{
		grp.POST("", h.Create)
		grp.GET("", h.List)
		grp.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	record, err := h.svc.Create(c.Request.Context(), handler.CurrentUser(c).ID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context(), handler.CurrentUser(c).ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("Record not found"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, handler.CurrentUser(c).ID); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
