package models

import (
	"time"
)

// Role est le rôle d'un utilisateur dans la base de données

type Role string

const (
	SuperAdminRole Role = "super_admin"
	EditorRole     Role = "editor"
	SubscriberRole Role = "subscriber"
)

// IsPrivileged indique si le rôle donne accès au dashboard
func (r Role) IsPrivileged() bool {
	return r == SuperAdminRole || r == EditorRole
}

// IsValid vérifie que le rôle fait partie de l'énumération
func (r Role) IsValid() bool {
	switch r {
	case SuperAdminRole, EditorRole, SubscriberRole:
		return true
	}
	return false
}

type User struct {
	UserID    uint      `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName  string    `json:"user_name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"type:varchar(150);uniqueIndex;not null"`
	Phone     *string   `json:"phone" gorm:"type:varchar(30)"`
	Role      Role      `json:"role" gorm:"type:varchar(50);not null"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	AuthToken *string   `json:"-" gorm:"type:text"`
	Active    bool      `json:"active" gorm:"default:true;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserCreate struct {
	UserName string  `json:"user_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    *string `json:"phone"`
	Role     Role    `json:"role" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Active   *bool   `json:"active"`
}

type UserUpdate struct {
	UserName *string `json:"user_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Role     *Role   `json:"role"`
	Password *string `json:"password"`
	Active   *bool   `json:"active"`
}
