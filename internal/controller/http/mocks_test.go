package http

import (
	"context"

	"videau/internal/entity"
	"videau/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, userID string, input usecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) ListVideos(ctx context.Context) ([]*entity.VideoWithAuthor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoWithAuthor), args.Error(1)
}

func (m *MockVideoUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.VideoWithAuthor, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoWithAuthor), args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(ctx context.Context, videoID string) (*entity.VideoDetail, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoDetail), args.Error(1)
}

func (m *MockVideoUseCase) CreateVideo(ctx context.Context, userID string, input usecase.CreateVideoInput) (*entity.Video, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) ListMyVideos(ctx context.Context, userID string) ([]*entity.VideoWithAuthor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoWithAuthor), args.Error(1)
}

func (m *MockVideoUseCase) ListFavourites(ctx context.Context, userID string) ([]*entity.VideoWithAuthor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoWithAuthor), args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(ctx context.Context, videoID string, changes entity.VideoChanges) (*entity.Video, error) {
	args := m.Called(ctx, videoID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockVideoUseCase) AddFavourite(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

func (m *MockVideoUseCase) RemoveFavourite(ctx context.Context, userID, videoID string) error {
	args := m.Called(ctx, userID, videoID)
	return args.Error(0)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) GetComment(ctx context.Context, commentID string) (*entity.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, userID, videoID string, input usecase.CreateCommentInput) (*entity.Comment, error) {
	args := m.Called(ctx, userID, videoID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, commentID string, changes entity.CommentChanges) (*entity.Comment, error) {
	args := m.Called(ctx, commentID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, videoID, commentID string) error {
	args := m.Called(ctx, videoID, commentID)
	return args.Error(0)
}

type MockOwnershipUseCase struct {
	mock.Mock
}

func (m *MockOwnershipUseCase) CheckVideoOwner(ctx context.Context, videoID, userID string) error {
	args := m.Called(ctx, videoID, userID)
	return args.Error(0)
}

func (m *MockOwnershipUseCase) CheckCommentOwner(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

var (
	_ usecase.UserUseCase      = (*MockUserUseCase)(nil)
	_ usecase.VideoUseCase     = (*MockVideoUseCase)(nil)
	_ usecase.CommentUseCase   = (*MockCommentUseCase)(nil)
	_ usecase.OwnershipUseCase = (*MockOwnershipUseCase)(nil)
)
