package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	URL         string    `gorm:"type:varchar(500);not null"`
	Title       string    `gorm:"not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"not null"`
	Likes       int       `gorm:"default:0"`
	Dislikes    int       `gorm:"default:0"`
	Views       int       `gorm:"default:0"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	Comments    []string  `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
