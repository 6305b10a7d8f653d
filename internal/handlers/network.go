package handlers

import (
	"net/http"

	"github.com/Zaid-maker/git-wrapped-api/internal/services"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
	"github.com/gin-gonic/gin"
)

type NetworkHandler struct {
	networkService *services.NetworkService
	perPageDefault int
	perPageMax     int
}

func NewNetworkHandler(networkService *services.NetworkService, cfg *config.Config) *NetworkHandler {
	return &NetworkHandler{
		networkService: networkService,
		perPageDefault: cfg.Stats.PerPageDefault,
		perPageMax:     cfg.Stats.PerPageMax,
	}
}

// GetNetwork serves one page of the network leaderboard for a username
func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	username := c.Param("username")

	metric := c.DefaultQuery("metric", services.MetricConnections)
	if !services.ValidMetric(metric) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric: " + metric})
		return
	}

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(c, "per_page", h.perPageDefault)
	if perPage < 1 {
		perPage = h.perPageDefault
	}
	if perPage > h.perPageMax {
		perPage = h.perPageMax
	}

	network, err := h.networkService.BuildNetwork(c.Request.Context(), username, metric, page, perPage)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, network)
}
