package handlers

import (
	"net/http"

	"github.com/Zaid-maker/git-wrapped-api/internal/services"
	"github.com/gin-gonic/gin"
)

type WrappedHandler struct {
	wrappedService *services.WrappedService
}

func NewWrappedHandler(wrappedService *services.WrappedService) *WrappedHandler {
	return &WrappedHandler{
		wrappedService: wrappedService,
	}
}

// GetWrapped serves the full stats dashboard for a username
func (h *WrappedHandler) GetWrapped(c *gin.Context) {
	username := c.Param("username")

	wrapped, err := h.wrappedService.BuildWrapped(c.Request.Context(), username)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, wrapped)
}

// GetCalendar serves the contribution heat-map for a username
func (h *WrappedHandler) GetCalendar(c *gin.Context) {
	username := c.Param("username")

	calendar, err := h.wrappedService.BuildCalendar(c.Request.Context(), username)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, calendar)
}
