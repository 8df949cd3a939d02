package persistent

import (
	"context"

	"videau/internal/entity"
	"videau/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error)
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error)
	Update(ctx context.Context, id string, changes entity.CommentChanges) (*entity.Comment, error)
	Delete(ctx context.Context, id string) (*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(commentModel), nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entity.Comment{}, nil
	}

	var commentModels []model.CommentModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&commentModels).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*model.CommentModel, len(commentModels))
	for i := range commentModels {
		byID[commentModels[i].ID] = &commentModels[i]
	}

	comments := make([]*entity.Comment, 0, len(ids))
	for _, id := range ids {
		if commentModel, ok := byID[id]; ok {
			comments = append(comments, ToCommentEntity(commentModel))
		}
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, id string, changes entity.CommentChanges) (*entity.Comment, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := updateColumns(r.db.WithContext(ctx).Model(&model.CommentModel{}), id, commentColumns(changes)); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *commentRepository) Delete(ctx context.Context, id string) (*entity.Comment, error) {
	comment, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return comment, nil
}
