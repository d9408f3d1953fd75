package models

import (
	"time"
)

// UserSubscription relie un utilisateur à une formule d'abonnement
type UserSubscription struct {
	ID                 uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID             uint      `json:"user_id" gorm:"not null"`
	SubscriptionID     uint      `json:"subscription_id" gorm:"not null"`
	StartDatetime      time.Time `json:"start_datetime" gorm:"not null"`
	EndDate            time.Time `json:"end_date" gorm:"not null"`
	PaymentMethod      string    `json:"payment_method" gorm:"type:varchar(50);not null"`
	IsDeleted          bool      `json:"is_deleted" gorm:"default:false;not null"`
	SubscriptionStatus string    `json:"subscription_status" gorm:"type:varchar(50);default:'Active';not null"`
	AddedBy            uint      `json:"added_by" gorm:"not null"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	User         User               `json:"-" gorm:"foreignKey:UserID;references:UserID"`
	Subscription MasterSubscription `json:"-" gorm:"foreignKey:SubscriptionID;references:ID"`
	Creator      User               `json:"-" gorm:"foreignKey:AddedBy;references:UserID"`
}

type UserSubscriptionCreate struct {
	UserID             uint      `json:"user_id" binding:"required"`
	SubscriptionID     uint      `json:"subscription_id" binding:"required"`
	StartDatetime      time.Time `json:"start_datetime" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
	PaymentMethod      string    `json:"payment_method" binding:"required"`
	SubscriptionStatus *string   `json:"subscription_status"`
}

type UserSubscriptionUpdate struct {
	UserID             *uint      `json:"user_id"`
	SubscriptionID     *uint      `json:"subscription_id"`
	StartDatetime      *time.Time `json:"start_datetime"`
	EndDate            *time.Time `json:"end_date"`
	PaymentMethod      *string    `json:"payment_method"`
	SubscriptionStatus *string    `json:"subscription_status"`
	IsDeleted          *bool      `json:"is_deleted"`
}
