package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID              string   `gorm:"type:uuid;primary_key"`
	Name            string   `gorm:"not null"`
	Username        string   `gorm:"uniqueIndex;not null"`
	Password        string   `gorm:"not null"`
	Avatar          string   `gorm:"type:varchar(500)"`
	MyVideos        []string `gorm:"serializer:json;type:text"`
	FavouriteVideos []string `gorm:"serializer:json;type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
