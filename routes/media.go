package routes

import (
	"github.com/gurpreetgarry91/pbs-backend/handlers/media"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func MediaRoutes(dashboard *gin.RouterGroup, database *gorm.DB) {
	handler := media.New(database, UploadDir())

	dashboard.GET("/media", handler.GetMedia)
	dashboard.POST("/media", handler.UploadMedia)
	dashboard.DELETE("/media/:id", handler.DeleteMedia)
}
