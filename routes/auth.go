package routes

import (
	"github.com/aangaziz1996/elanet-sub000/handlers/auth"
	"github.com/aangaziz1996/elanet-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/login", auth.Login)
	r.POST("/customers/:id/account", middleware.AdminAuth(), auth.CreateCustomerAccount)
	r.PUT("/password", middleware.JWTAuth(), auth.UpdatePassword)
}
