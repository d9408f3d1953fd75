package routes

import (
	"os"
	"time"

	"github.com/gurpreetgarry91/pbs-backend/handlers/ping"
	"github.com/gurpreetgarry91/pbs-backend/middleware"
	"github.com/gurpreetgarry91/pbs-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// UploadDir retourne la racine de stockage des fichiers uploadés
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

func SetupRouter(database *gorm.DB) *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Les fichiers uploadés sont servis tels quels sous /uploads
	r.Static("/uploads", UploadDir())

	pingHandler := ping.New()

	mobile := r.Group("/mobile")
	mobile.GET("/ping", pingHandler.HandleMobilePing)
	AuthRoutes(mobile, database)

	dashboard := r.Group("/dashboard")
	dashboard.GET("/ping", pingHandler.HandleDashboardPing)

	protected := dashboard.Group("", middleware.DashboardAuth(database))
	UsersRoutes(protected, database)
	SubscriptionsRoutes(protected, database)
	UserSubscriptionsRoutes(protected, database)
	MediaRoutes(protected, database)

	return r
}
