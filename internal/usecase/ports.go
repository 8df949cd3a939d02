package usecase

import (
	"context"
	"io"
)

// FileStorage stores uploaded blobs and returns their public URL.
type FileStorage interface {
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// EventPublisher hands notification tasks to the message broker.
type EventPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}

type TokenIssuer interface {
	GenerateToken(userID, username, passwordHash string) (string, error)
}

// AvatarUpload is an avatar file received with a register or update request.
type AvatarUpload struct {
	Body        io.Reader
	Filename    string
	ContentType string
}
