package main

import (
	"log"
	"os"

	"careconnect-backend/internal/config"
	"careconnect-backend/internal/routes"
	"careconnect-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB
	config.ConnectDB()

	// Init Firebase (opsional, skip kalau kredensial tidak ada)
	utils.InitFCM()

	// 3. Init Router + Middleware + Routes
	r := gin.Default()
	routes.SetupRoutes(r)

	// 4. Test Ping
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 5. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server berjalan di port " + port)
	r.Run(":" + port)
}
