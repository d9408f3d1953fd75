package routes

import (
	"github.com/gurpreetgarry91/pbs-backend/handlers/subscriptions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SubscriptionsRoutes(dashboard *gin.RouterGroup, database *gorm.DB) {
	handler := subscriptions.New(database)

	dashboard.GET("/subscriptions", handler.GetAllSubscriptions)
	dashboard.POST("/subscriptions", handler.CreateSubscription)
	dashboard.GET("/subscriptions/:id", handler.GetSubscriptionByID)
	dashboard.PUT("/subscriptions/:id", handler.UpdateSubscription)
	dashboard.DELETE("/subscriptions/:id", handler.DeleteSubscription)
}
