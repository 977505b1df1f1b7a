package handlers

import (
	"errors"
	"net/http"

	request "villaweb/internal/adapter/http/dto/request"
	response "villaweb/internal/adapter/http/dto/response"
	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase"
	"villaweb/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

const questionnaireSource = "wizard"

// QuoteHandler handles the public quote surface: questionnaire submission,
// share-link reads and client-side action logging.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote accepts the wizard payload, prices it and persists the quote.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), payload.ToAnswers(), questionnaireSource)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreateResult(result))
}

// GetQuote serves the public share link. The key is either the quote id or
// the public token; every hit logs a VIEWED event.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	detail, err := h.usecase.GetByIDOrToken(c.Request.Context(), c.Param("id"), "public")
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteDetail(detail))
}

// RecordQuoteEvent logs a client-side action. Only download and share kinds
// are accepted here; lifecycle kinds are appended by their own operations.
func (h *QuoteHandler) RecordQuoteEvent(c *gin.Context) {
	var payload request.QuoteEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	event := entities.EventType(payload.Event)
	if event != entities.EventPDFDownloaded && event != entities.EventSentWhatsapp {
		appErr := pkg.NewDomainErrorSimple("INVALID_EVENT", "Event kind not accepted", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.RecordEvent(c.Request.Context(), c.Param("id"), event, payload.Metadata); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListQuoteEvents returns the audit trail, newest first.
func (h *QuoteHandler) ListQuoteEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteEvents(events))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingClientInfo):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_INFO", "Client contact info is incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingProjectType):
		return pkg.NewDomainErrorSimple("MISSING_PROJECT_TYPE", "Project type is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteKey), errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidEventType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPDFRendererNotConfigured):
		return pkg.NewDomainErrorSimple("PDF_SERVICE_UNAVAILABLE", "PDF service not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
