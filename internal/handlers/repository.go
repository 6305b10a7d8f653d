package handlers

import (
	"net/http"

	"github.com/Zaid-maker/git-wrapped-api/internal/services"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
	"github.com/gin-gonic/gin"
)

type RepositoryHandler struct {
	repositoryService *services.RepositoryService
	perPageDefault    int
}

func NewRepositoryHandler(repositoryService *services.RepositoryService, cfg *config.Config) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
		perPageDefault:    cfg.Stats.PerPageDefault,
	}
}

// ListRepositories serves one page of the repository browser
func (h *RepositoryHandler) ListRepositories(c *gin.Context) {
	username := c.Param("username")
	sortOrder := c.DefaultQuery("sort", services.SortStars)

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := h.repositoryService.ClampPerPage(queryInt(c, "per_page", h.perPageDefault))

	repositories, err := h.repositoryService.Browse(c.Request.Context(), username, sortOrder, page, perPage)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, repositories)
}
