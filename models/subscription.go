package models

import (
	"time"
)

// MasterSubscription est une formule d'abonnement achetable
type MasterSubscription struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SubscriptionName string    `json:"subscription_name" gorm:"type:varchar(150);not null"`
	Description      *string   `json:"description" gorm:"type:text"`
	Price            float64   `json:"price" gorm:"type:numeric(10,2);not null"`
	Duration         int       `json:"duration" gorm:"not null"`
	Active           bool      `json:"active" gorm:"default:true;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type SubscriptionCreate struct {
	SubscriptionName string  `json:"subscription_name" binding:"required"`
	Description      *string `json:"description"`
	Price            float64 `json:"price" binding:"required"`
	Duration         int     `json:"duration" binding:"required"`
	Active           *bool   `json:"active"`
}

type SubscriptionUpdate struct {
	SubscriptionName *string  `json:"subscription_name"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price"`
	Duration         *int     `json:"duration"`
	Active           *bool    `json:"active"`
}
