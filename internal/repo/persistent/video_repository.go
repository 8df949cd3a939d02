package persistent

import (
	"context"

	"videau/internal/entity"
	"videau/internal/model"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) (*entity.Video, error)
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	List(ctx context.Context) ([]*entity.Video, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Video, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Video, error)
	Update(ctx context.Context, id string, changes entity.VideoChanges) (*entity.Video, error)
	UpdateComments(ctx context.Context, id string, apply func([]string) []string) (*entity.Video, error)
	Delete(ctx context.Context, id string) (*entity.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) (*entity.Video, error) {
	videoModel := ToVideoModel(video)
	if err := r.db.WithContext(ctx).Create(videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(videoModel), nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var videoModel model.VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) List(ctx context.Context) ([]*entity.Video, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *videoRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Video, error) {
	return r.find(r.db.WithContext(ctx).Where("category = ?", category))
}

func (r *videoRepository) find(query *gorm.DB) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := query.Order("created_at ASC").Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

// ListByIDs returns the videos that still exist, in the order of ids.
// Repeated ids yield repeated entries.
func (r *videoRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Video, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entity.Video{}, nil
	}

	var videoModels []model.VideoModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&videoModels).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*model.VideoModel, len(videoModels))
	for i := range videoModels {
		byID[videoModels[i].ID] = &videoModels[i]
	}

	videos := make([]*entity.Video, 0, len(ids))
	for _, id := range ids {
		if videoModel, ok := byID[id]; ok {
			videos = append(videos, ToVideoEntity(videoModel))
		}
	}
	return videos, nil
}

// Update writes only the changed columns; the comment list is left alone.
func (r *videoRepository) Update(ctx context.Context, id string, changes entity.VideoChanges) (*entity.Video, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := updateColumns(r.db.WithContext(ctx).Model(&model.VideoModel{}), id, videoColumns(changes)); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateComments replaces the comment list with apply(current) and writes
// that column alone.
func (r *videoRepository) UpdateComments(ctx context.Context, id string, apply func([]string) []string) (*entity.Video, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var videoModel model.VideoModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, &videoModel, id); err != nil {
			return err
		}
		videoModel.Comments = nonNil(apply(nonNil(videoModel.Comments)))
		return tx.Model(&videoModel).Select("comments").Updates(&videoModel).Error
	})
	if err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) Delete(ctx context.Context, id string) (*entity.Video, error) {
	video, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoModel{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}
	return video, nil
}
