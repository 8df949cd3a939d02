package persistent

import (
	"context"

	"videau/internal/entity"
	"videau/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.User, error)
	Update(ctx context.Context, id string, changes entity.UserChanges) (*entity.User, error)
	UpdateMyVideos(ctx context.Context, id string, apply func([]string) []string) (*entity.User, error)
	UpdateFavouriteVideos(ctx context.Context, id string, apply func([]string) []string) (*entity.User, error)
	Delete(ctx context.Context, id string) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(userModel), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

// ListByIDs returns the users that still exist, in the order of ids.
func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.User, len(userModels))
	for i := range userModels {
		byID[userModels[i].ID] = ToUserEntity(&userModels[i])
	}

	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := byID[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// Update writes only the changed profile columns and returns the stored row.
func (r *userRepository) Update(ctx context.Context, id string, changes entity.UserChanges) (*entity.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := updateColumns(r.db.WithContext(ctx).Model(&model.UserModel{}), id, userColumns(changes)); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepository) UpdateMyVideos(ctx context.Context, id string, apply func([]string) []string) (*entity.User, error) {
	return r.updateList(ctx, id, "my_videos", func(m *model.UserModel) *[]string { return &m.MyVideos }, apply)
}

func (r *userRepository) UpdateFavouriteVideos(ctx context.Context, id string, apply func([]string) []string) (*entity.User, error) {
	return r.updateList(ctx, id, "favourite_videos", func(m *model.UserModel) *[]string { return &m.FavouriteVideos }, apply)
}

// updateList rewrites one list column of the user under the row lock.
func (r *userRepository) updateList(ctx context.Context, id, column string, list func(*model.UserModel) *[]string, apply func([]string) []string) (*entity.User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var userModel model.UserModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &userModel, id); err != nil {
			return err
		}
		ids := list(&userModel)
		*ids = nonNil(apply(nonNil(*ids)))
		return tx.Model(&userModel).Select(column).Updates(&userModel).Error
	})
	if err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

// Delete removes the user and returns the row as it was before removal.
func (r *userRepository) Delete(ctx context.Context, id string) (*entity.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return user, nil
}
