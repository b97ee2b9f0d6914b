package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/portal-api/internal/model"
)

// ContextUserKey is where the auth middleware stores the resolved user.
const ContextUserKey = "currentUser"

// CurrentUser returns the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(ContextUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// Handler serves the unauthenticated meta endpoints.
type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

func (h *Handler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "VitalSync AI Healthcare Portal API",
		"version": h.version,
	})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
