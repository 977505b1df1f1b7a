package handlers

import (
	"net/http"

	"villaweb/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuotePDFHandler serves the printable quote document.

type QuotePDFHandler struct {
	usecase usecase.IQuotePDFUseCase
}

func NewQuotePDFHandler(uc usecase.IQuotePDFUseCase) *QuotePDFHandler {
	return &QuotePDFHandler{usecase: uc}
}

// DownloadQuotePDF renders the quote addressed by id or public token and
// returns the binary as an attachment.
func (h *QuotePDFHandler) DownloadQuotePDF(c *gin.Context) {
	exported, err := h.usecase.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exported.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", exported.Content)
}
