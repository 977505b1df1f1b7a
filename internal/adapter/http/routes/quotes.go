package routes

import (
	"villaweb/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathAdminQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, pdfHandler *handlers.QuotePDFHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/pdf", pdfHandler.DownloadQuotePDF)
		quotes.POST("/:id/events", quoteHandler.RecordQuoteEvent)
		quotes.GET("/:id/events", quoteHandler.ListQuoteEvents)
	}
}

func addAdminQuoteRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminQuoteHandler) {
	quotes := rg.Group(PathAdminQuotes)
	{
		quotes.GET("", adminHandler.ListQuotes)
		quotes.GET("/:id", adminHandler.GetQuote)
		quotes.PATCH("/:id", adminHandler.UpdateQuoteStatus)
	}
}
