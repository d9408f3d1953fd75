package routes

import (
	"github.com/gurpreetgarry91/pbs-backend/handlers/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UsersRoutes(dashboard *gin.RouterGroup, database *gorm.DB) {
	handler := users.New(database)

	dashboard.GET("/users", handler.GetAllUsers)
	dashboard.POST("/users", handler.CreateUser)
	dashboard.GET("/users/:id", handler.GetUserByID)
	dashboard.PUT("/users/:id", handler.UpdateUser)
	dashboard.DELETE("/users/:id", handler.DeleteUser)
}
