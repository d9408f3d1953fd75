package main

import (
	"log"
	"os"

	"github.com/gurpreetgarry91/pbs-backend/db"
	_ "github.com/gurpreetgarry91/pbs-backend/docs"
	"github.com/gurpreetgarry91/pbs-backend/routes"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title PBS Backend API
// @version 1.0
// @description API backend du service de médias par abonnement (dashboard + mobile)
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le token avec le préfixe Bearer: Bearer <token>
func main() {

	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, relying on system environment")
	}

	// Secret obligatoire, pas de valeur de repli
	if err := utils.RequireSecretKey(); err != nil {
		utils.LogError(err, "Missing signing secret")
		log.Fatal(err)
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatal("Could not connect to the database: ", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal("Could not migrate the database: ", err)
	}

	if err := os.MkdirAll(routes.UploadDir(), 0755); err != nil {
		log.Fatal("Could not create the upload directory: ", err)
	}

	r := routes.SetupRouter(database)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur: ", err)
	}
}
