package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Zaid-maker/git-wrapped-api/internal/middleware"
	"github.com/Zaid-maker/git-wrapped-api/internal/services"
	"github.com/Zaid-maker/git-wrapped-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// renderError maps a service error to a JSON error response. Unknown users
// become 404; everything else from the GitHub layer is surfaced as 502
// without reinterpretation.
func renderError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, services.ErrUserNotFound) {
		status = http.StatusNotFound
	}

	logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).
		Warnf("request for %s failed", c.Request.URL.Path)

	c.JSON(status, gin.H{"error": err.Error()})
}

// queryInt reads an integer query parameter with a default
func queryInt(c *gin.Context, key string, defaultValue int) int {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
