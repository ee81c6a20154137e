package routes

import (
	"serviexpress/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests   = "/requests"
	PathQuotations = "/quotations"
	PathPayouts    = "/payouts"
	PathInvoices   = "/invoices"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ServiceRequestHandler,
	quotationHandler *handlers.QuotationHandler,
	payoutHandler *handlers.PayoutHandler,
) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", requestHandler.ListRequests)
		requests.GET("/active/:handyman_id", requestHandler.GetActiveWithHandyman)
		requests.GET("/:request_id", requestHandler.GetRequest)
		requests.PATCH("/:request_id/accept", requestHandler.AcceptRequest)
		requests.PATCH("/:request_id/reject", requestHandler.RejectRequest)
		requests.PATCH("/:request_id/cancel", requestHandler.CancelRequest)
		requests.PATCH("/:request_id/complete", requestHandler.CompleteRequest)

		requests.POST("/:request_id/quotation", quotationHandler.CreateQuotation)
		requests.GET("/:request_id/quotation", quotationHandler.GetQuotationByRequest)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.PATCH("/:quotation_id", quotationHandler.UpdateQuotation)
		quotations.PATCH("/:quotation_id/accept", quotationHandler.AcceptQuotation)
		quotations.PATCH("/:quotation_id/reject", quotationHandler.RejectQuotation)
	}

	payouts := rg.Group(PathPayouts)
	{
		payouts.GET("/requests/:request_id", payoutHandler.GetHandymanPayout)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/requests/:request_id", payoutHandler.GetClientInvoice)
	}
}
