package routes

import (
	"github.com/aangaziz1996/elanet-sub000/handlers/payments"
	"github.com/aangaziz1996/elanet-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine) {
	r.POST("/customers/:id/payments", middleware.AdminAuth(), payments.RecordPayment)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.Use(middleware.AdminAuth())
	{
		paymentsGroup.GET("", payments.GetAllPayments)
		paymentsGroup.PUT("/:id/status", payments.UpdatePaymentStatus)
	}
}
