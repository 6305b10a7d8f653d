package handlers

import (
	"net/http"

	"github.com/Zaid-maker/git-wrapped-api/internal/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	wrappedService *services.WrappedService
	exportService  *services.ExportService
}

func NewExportHandler(wrappedService *services.WrappedService, exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		wrappedService: wrappedService,
		exportService:  exportService,
	}
}

// ExportWrapped serves the wrapped stats as a downloadable Excel workbook
func (h *ExportHandler) ExportWrapped(c *gin.Context) {
	username := c.Param("username")

	wrapped, err := h.wrappedService.BuildWrapped(c.Request.Context(), username)
	if err != nil {
		renderError(c, err)
		return
	}

	workbook, err := h.exportService.BuildWorkbook(wrapped)
	if err != nil {
		renderError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.exportService.Filename(username)+`"`)
	c.Data(http.StatusOK, xlsxContentType, workbook.Bytes())
}
