package routes

import (
	"github.com/gurpreetgarry91/pbs-backend/handlers/usersubscriptions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserSubscriptionsRoutes(dashboard *gin.RouterGroup, database *gorm.DB) {
	handler := usersubscriptions.New(database)

	dashboard.GET("/user-subscriptions", handler.GetAllUserSubscriptions)
	dashboard.POST("/user-subscriptions", handler.CreateUserSubscription)
	dashboard.GET("/user-subscriptions/:id", handler.GetUserSubscriptionByID)
	dashboard.PUT("/user-subscriptions/:id", handler.UpdateUserSubscription)
	dashboard.DELETE("/user-subscriptions/:id", handler.DeleteUserSubscription)
}
