package models

import (
	"time"
)

// MediaType est déduit du préfixe du type MIME déclaré à l'upload

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaFile  MediaType = "file"
)

// Media décrit un fichier uploadé; les octets vivent sur le disque,
// stored_path est relatif à la racine des uploads
type Media struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	OriginalName string    `json:"original_name" gorm:"type:varchar(255);not null"`
	StoredPath   string    `json:"stored_path" gorm:"type:varchar(1024);not null"`
	MediaType    MediaType `json:"media_type" gorm:"type:varchar(50);not null"`
	UploadDate   time.Time `json:"upload_date" gorm:"type:date;not null"`
	AddedBy      *uint     `json:"added_by"`
	IsDeleted    bool      `json:"is_deleted" gorm:"default:false;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}
