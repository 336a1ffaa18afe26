package routes

import (
	"github.com/aangaziz1996/elanet-sub000/handlers/portal"
	"github.com/aangaziz1996/elanet-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func PortalRoutes(r *gin.Engine) {
	portalGroup := r.Group("/portal")
	portalGroup.Use(middleware.JWTAuth())
	{
		portalGroup.GET("/me", portal.GetMe)
		portalGroup.PUT("/me", portal.UpdateMe)
		portalGroup.GET("/payments", portal.GetMyPayments)
		portalGroup.POST("/payments", portal.SubmitPaymentConfirmation)
	}
}
