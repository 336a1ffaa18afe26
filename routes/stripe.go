package routes

import (
	"github.com/aangaziz1996/elanet-sub000/handlers/stripe"
	"github.com/aangaziz1996/elanet-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.Engine) {
	r.POST("/portal/checkout", middleware.JWTAuth(), stripe.CreateCheckoutSession)
	// Authenticated by the Stripe signature, not by a JWT
	r.POST("/webhook/stripe", stripe.StripeWebhookHandler)
}
