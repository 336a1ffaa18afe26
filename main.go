package main

import (
	"log"

	"github.com/aangaziz1996/elanet-sub000/db"
	_ "github.com/aangaziz1996/elanet-sub000/docs"
	"github.com/aangaziz1996/elanet-sub000/routes"
	"github.com/aangaziz1996/elanet-sub000/utils"

	"github.com/gin-gonic/gin"
)

// @title API ELaNet
// @version 1.0
// @description Customer management and billing tracking API for the ELaNet WiFi network
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Proof-of-payment image upload will not work correctly.")
	}

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
