package routes

import (
	"quoteflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathJobs   = "/jobs"
)

func addStatusFlowRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteFlowHandler, jobHandler *handlers.JobFlowHandler, statusHandler *handlers.StatusFlowHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/transitions", quoteHandler.TransitionQuote)
		quotes.GET("/:quote_id/transitions", quoteHandler.ListTransitions)
		quotes.POST("/:quote_id/reopen", quoteHandler.ReopenQuote)
		quotes.POST("/:quote_id/deposit", quoteHandler.MarkDepositPaid)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.POST("/:job_id/transitions", jobHandler.TransitionJob)
		jobs.GET("/:job_id/transitions", jobHandler.ListTransitions)
	}

	rg.GET("/status-flow/:entity_type/:status/next", statusHandler.GetAllowedStatuses)
	rg.POST("/webhooks/payments", quoteHandler.HandlePaymentWebhook)
	rg.POST("/admin/portal-sweeps", statusHandler.RunPortalSweep)
}
