package usecase

import (
	"context"
	"errors"
	"path/filepath"

	"videau/internal/entity"
	"videau/internal/repo/persistent"
	"videau/pkg/apperror"
	"videau/pkg/logger"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name       string
	Username   string
	Password   string
	Avatar     string
	AvatarFile *AvatarUpload
}

// UpdateUserInput leaves nil fields untouched.
type UpdateUserInput struct {
	Name       *string
	Username   *string
	Password   *string
	Avatar     *string
	AvatarFile *AvatarUpload
}

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userUseCase struct {
	userRepo      persistent.UserRepository
	hasher        *PasswordHasher
	tokens        TokenIssuer
	storage       FileStorage
	defaultAvatar string
	logger        *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	hasher *PasswordHasher,
	tokens TokenIssuer,
	storage FileStorage,
	defaultAvatar string,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		storage:       storage,
		defaultAvatar: defaultAvatar,
		logger:        logger,
	}
}

func (uc *userUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	_, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err == nil {
		return nil, apperror.New(apperror.KindNotFound, "Username already exists, please change it")
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, apperror.New(apperror.KindCreate, err.Error())
	}

	avatar := input.Avatar
	if input.AvatarFile != nil {
		avatar, err = uc.uploadAvatar(ctx, input.AvatarFile)
		if err != nil {
			uc.logger.Error("Failed to upload avatar: %v", err)
			return nil, apperror.Wrap(apperror.KindCreate, "Could not upload avatar", err)
		}
	}
	if avatar == "" {
		avatar = uc.defaultAvatar
	}

	hashedPassword, err := uc.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.New(apperror.KindCreate, err.Error())
	}

	created, err := uc.userRepo.Create(ctx, &entity.User{
		Name:            input.Name,
		Username:        input.Username,
		Password:        hashedPassword,
		Avatar:          avatar,
		MyVideos:        []string{},
		FavouriteVideos: []string{},
	})
	if err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, apperror.New(apperror.KindCreate, err.Error())
	}
	if created == nil {
		return nil, apperror.New(apperror.KindNotFound, "Not possible to create a new user")
	}

	return created, nil
}

func (uc *userUseCase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, entity.ErrNotFound) {
		return "", apperror.New(apperror.KindUnauthorized, "Incorrect username")
	}
	if err != nil {
		return "", apperror.New(apperror.KindQuery, err.Error())
	}

	if !uc.hasher.CheckPassword(password, user.Password) {
		return "", apperror.New(apperror.KindUnauthorized, "Incorrect password")
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Username, user.Password)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", apperror.New(apperror.KindQuery, err.Error())
	}
	return token, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, classify(err,
			apperror.KindNotFound, "Could not find the id of user",
			apperror.KindQuery, "Could not get user")
	}
	return user, nil
}

// UpdateUser writes only the profile fields present in input and rehashes
// the password only when the input carries a new one. The video lists are
// never touched.
func (uc *userUseCase) UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (*entity.User, error) {
	const missing, failed = "Could not update", "General error on update user"

	changes := entity.UserChanges{
		Name:     input.Name,
		Username: input.Username,
		Avatar:   input.Avatar,
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := uc.hasher.HashPassword(*input.Password)
		if err != nil {
			return nil, apperror.Wrap(apperror.KindUpdate, failed, err)
		}
		changes.Password = &hashedPassword
	}
	if input.AvatarFile != nil {
		avatar, err := uc.uploadAvatar(ctx, input.AvatarFile)
		if err != nil {
			uc.logger.Error("Failed to upload avatar: %v", err)
			return nil, apperror.Wrap(apperror.KindUpdate, failed, err)
		}
		changes.Avatar = &avatar
	}

	updated, err := uc.userRepo.Update(ctx, userID, changes)
	if err != nil {
		return nil, classify(err, apperror.KindUpdateFailed, missing, apperror.KindUpdate, failed)
	}
	return updated, nil
}

// DeleteUser leaves the user's videos and comments in place.
func (uc *userUseCase) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.Delete(ctx, userID); err != nil {
		return classify(err,
			apperror.KindNotFound, "Could not delete user",
			apperror.KindDelete, "Could not get id from user")
	}
	return nil
}

func (uc *userUseCase) uploadAvatar(ctx context.Context, file *AvatarUpload) (string, error) {
	if uc.storage == nil {
		return "", errors.New("avatar storage is not configured")
	}
	key := "avatars/" + uuid.New().String() + filepath.Ext(file.Filename)
	return uc.storage.UploadFile(ctx, key, file.Body, file.ContentType)
}
