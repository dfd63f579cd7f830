package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/parladach/parladach-api/config"
	"github.com/parladach/parladach-api/routes"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env")
	}

	settings := config.Load()
	if settings.SecretKey == "" {
		log.Fatal("SECRET_KEY es obligatoria")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config.InitDB(settings)

	r := gin.Default()

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB, settings, logger)

	log.Println("Servidor escuchando en el puerto " + settings.Port)
	r.Run(":" + settings.Port)
}
