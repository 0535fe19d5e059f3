package routes

import (
	"coatingshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

// addQuoteRoutes mounts the authenticated quote surface. online guards the
// mutating routes only.
func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler, auth, online gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes, auth)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.GET("/:id/events", quoteHandler.StreamQuote)
		quotes.PATCH("/:id/status", online, quoteHandler.UpdateStatus)
		quotes.PATCH("/:id/tracking", online, quoteHandler.UpdateTracking)
		quotes.PATCH("/:id/content", online, quoteHandler.UpdateContent)
		quotes.POST("/:id/cancel", online, quoteHandler.CancelQuote)
		quotes.DELETE("/:id", online, quoteHandler.DeleteQuote)

		quotes.POST("/:id/payments", online, paymentHandler.PayQuote)
		quotes.GET("/:id/payments", paymentHandler.GetLatestPayment)
	}

	payments := rg.Group(PathPayments, auth)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
