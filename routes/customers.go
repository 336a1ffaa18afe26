package routes

import (
	"github.com/aangaziz1996/elanet-sub000/handlers/customers"
	"github.com/aangaziz1996/elanet-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func CustomersRoutes(r *gin.Engine) {
	customersGroup := r.Group("/customers")
	customersGroup.Use(middleware.AdminAuth())
	{
		customersGroup.POST("", customers.CreateCustomer)
		customersGroup.GET("", customers.GetAllCustomers)
		customersGroup.GET("/:id", customers.GetCustomerByID)
		customersGroup.PUT("/:id", customers.UpdateCustomer)
		customersGroup.DELETE("/:id", customers.DeleteCustomer)
	}
}
