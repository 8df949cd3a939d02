package persistent

import (
	"videau/internal/model"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.VideoModel{},
		&model.CommentModel{},
	)
}
