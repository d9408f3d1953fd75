package routes

import (
	"github.com/gurpreetgarry91/pbs-backend/handlers/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(mobile *gin.RouterGroup, database *gorm.DB) {
	handler := auth.New(database)

	mobile.POST("/login", handler.Login)
}
