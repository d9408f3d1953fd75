package models

import (
	"time"
)

// Advertisement a la même forme que Media, sans portée utilisateur/date.
// Aucune route ne l'expose pour l'instant, seule la table est créée.
type Advertisement struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	OriginalName string    `json:"original_name" gorm:"type:varchar(255);not null"`
	StoredPath   string    `json:"stored_path" gorm:"type:varchar(1024);not null"`
	AddedBy      *uint     `json:"added_by"`
	IsDeleted    bool      `json:"is_deleted" gorm:"default:false;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
