package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	Text      string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"not null"`
	Likes     int       `gorm:"default:0"`
	Dislikes  int       `gorm:"default:0"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	VideoID   string    `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
