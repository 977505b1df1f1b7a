package handlers

import (
	"net/http"
	"strconv"

	request "villaweb/internal/adapter/http/dto/request"
	response "villaweb/internal/adapter/http/dto/response"
	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase"
	"villaweb/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// AdminQuoteHandler handles the authenticated dashboard surface: listing,
// detail and status tracking.

type AdminQuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewAdminQuoteHandler(uc usecase.IQuoteUseCase) *AdminQuoteHandler {
	return &AdminQuoteHandler{usecase: uc}
}

// ListQuotes serves the dashboard table. "all" filter values from the UI mean
// no filter.
func (h *AdminQuoteHandler) ListQuotes(c *gin.Context) {
	filter := interfaces.QuoteFilter{
		Search:      c.Query("search"),
		Status:      entities.QuoteStatus(filterValue(c.Query("status"))),
		ProjectType: entities.ProjectType(filterValue(c.Query("type"))),
		Page:        intQuery(c, "page", 1),
		Limit:       intQuery(c, "limit", 20),
	}

	list, err := h.usecase.ListAdmin(c.Request.Context(), filter)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminList(list))
}

// GetQuote serves the admin detail view with the audit trail. Unlike the
// public read it does not log a VIEWED event.
func (h *AdminQuoteHandler) GetQuote(c *gin.Context) {
	detail, err := h.usecase.GetByIDOrToken(c.Request.Context(), c.Param("id"), "")
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	events, err := h.usecase.ListEvents(c.Request.Context(), detail.Quote.ID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminDetail(detail, events))
}

// UpdateQuoteStatus sets the quote status and appends a STATUS_CHANGED event.
func (h *AdminQuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func filterValue(v string) string {
	if v == "all" {
		return ""
	}
	return v
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
