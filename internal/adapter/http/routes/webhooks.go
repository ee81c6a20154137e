package routes

import (
	"serviexpress/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWebhooks = "/webhooks"

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.PayPalWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/paypal", webhookHandler.HandleWebhook)
	}
}
