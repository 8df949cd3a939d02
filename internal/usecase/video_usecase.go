package usecase

import (
	"context"
	"time"

	"videau/internal/entity"
	"videau/internal/repo/persistent"
	"videau/pkg/apperror"
	"videau/pkg/logger"
)

type CreateVideoInput struct {
	URL         string
	Title       string
	Category    string
	Description string
	Date        *time.Time
}

type VideoUseCase interface {
	ListVideos(ctx context.Context) ([]*entity.VideoWithAuthor, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.VideoWithAuthor, error)
	GetVideo(ctx context.Context, videoID string) (*entity.VideoDetail, error)
	CreateVideo(ctx context.Context, userID string, input CreateVideoInput) (*entity.Video, error)
	ListMyVideos(ctx context.Context, userID string) ([]*entity.VideoWithAuthor, error)
	ListFavourites(ctx context.Context, userID string) ([]*entity.VideoWithAuthor, error)
	UpdateVideo(ctx context.Context, videoID string, changes entity.VideoChanges) (*entity.Video, error)
	DeleteVideo(ctx context.Context, userID, videoID string) error
	AddFavourite(ctx context.Context, userID, videoID string) error
	RemoveFavourite(ctx context.Context, userID, videoID string) error
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	commentRepo persistent.CommentRepository
	events      *notifier
	logger      *logger.Logger
	now         func() time.Time
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	commentRepo persistent.CommentRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		events:      &notifier{publisher: publisher, logger: logger},
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *videoUseCase) ListVideos(ctx context.Context) ([]*entity.VideoWithAuthor, error) {
	const failed = "General error on getting videos"

	videos, err := uc.videoRepo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}
	populated, err := withAuthors(ctx, uc.userRepo, videos)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}
	return populated, nil
}

func (uc *videoUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.VideoWithAuthor, error) {
	const failed = "General error on getByCategory"

	videos, err := uc.videoRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}
	populated, err := withAuthors(ctx, uc.userRepo, videos)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}
	return populated, nil
}

// GetVideo populates the owner and the comments in list order. Comments
// that no longer exist are skipped.
func (uc *videoUseCase) GetVideo(ctx context.Context, videoID string) (*entity.VideoDetail, error) {
	const failed = "Could not get id from params"

	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, classify(err,
			apperror.KindNotFound, "Could not find the id of the video",
			apperror.KindQuery, failed)
	}

	comments, err := uc.commentRepo.ListByIDs(ctx, video.Comments)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}

	authorIDs := make([]string, 0, len(comments)+1)
	authorIDs = append(authorIDs, video.UserID)
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.UserID)
	}
	authors, err := authorIndex(ctx, uc.userRepo, authorIDs)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}

	detail := &entity.VideoDetail{
		Video:    *video,
		Author:   authors[video.UserID],
		Comments: make([]*entity.CommentWithAuthor, len(comments)),
	}
	for i, comment := range comments {
		detail.Comments[i] = &entity.CommentWithAuthor{Comment: *comment, Author: authors[comment.UserID]}
	}
	return detail, nil
}

// CreateVideo stores the video and appends it to the creator's myVideos.
// The two writes are not atomic; a failed list update is logged only.
func (uc *videoUseCase) CreateVideo(ctx context.Context, userID string, input CreateVideoInput) (*entity.Video, error) {
	const failed = "Fail on create new video"

	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}

	created, err := uc.videoRepo.Create(ctx, &entity.Video{
		URL:         input.URL,
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Date:        date,
		UserID:      userID,
		Comments:    []string{},
	})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindCreate, failed, err)
	}
	if created == nil {
		return nil, apperror.New(apperror.KindNotFound, "Could not create video")
	}

	_, err = uc.userRepo.UpdateMyVideos(ctx, userID, func(ids []string) []string {
		return entity.AppendID(ids, created.ID)
	})
	if absent(err) {
		return nil, apperror.Wrap(apperror.KindCreate, failed, err)
	}
	if err != nil {
		uc.logger.Error("Failed to append video %s to myVideos of user %s: %v", created.ID, userID, err)
	}

	uc.events.publish(map[string]interface{}{
		"type":     EventNewVideo,
		"user_id":  userID,
		"video_id": created.ID,
		"category": created.Category,
		"priority": 5,
	})

	return created, nil
}

func (uc *videoUseCase) ListMyVideos(ctx context.Context, userID string) ([]*entity.VideoWithAuthor, error) {
	return uc.listFromUser(ctx, userID, "Could not populate myVideos", func(user *entity.User) []string {
		return user.MyVideos
	})
}

func (uc *videoUseCase) ListFavourites(ctx context.Context, userID string) ([]*entity.VideoWithAuthor, error) {
	return uc.listFromUser(ctx, userID, "Could not populate favouriteVideos", func(user *entity.User) []string {
		return user.FavouriteVideos
	})
}

// listFromUser resolves one of the user's back-reference lists. Dangling ids
// are skipped.
func (uc *videoUseCase) listFromUser(ctx context.Context, userID, missing string, ids func(*entity.User) []string) ([]*entity.VideoWithAuthor, error) {
	const failed = "Could not get user to populate"

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, classify(err, apperror.KindNotFound, missing, apperror.KindQuery, failed)
	}

	videos, err := uc.videoRepo.ListByIDs(ctx, ids(user))
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}
	populated, err := withAuthors(ctx, uc.userRepo, videos)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindQuery, failed, err)
	}
	return populated, nil
}

// UpdateVideo writes only the given fields; the owner and the comment list
// are never touched.
func (uc *videoUseCase) UpdateVideo(ctx context.Context, videoID string, changes entity.VideoChanges) (*entity.Video, error) {
	updated, err := uc.videoRepo.Update(ctx, videoID, changes)
	if err != nil {
		return nil, classify(err,
			apperror.KindUpdateFailed, "Found the video but could not update",
			apperror.KindUpdate, "General error on updating the video")
	}
	return updated, nil
}

// DeleteVideo removes the video and prunes it from the acting user's
// myVideos. Other users' favourites keep the dangling id.
func (uc *videoUseCase) DeleteVideo(ctx context.Context, userID, videoID string) error {
	const failed = "Could not get id from params"

	deleted, err := uc.videoRepo.Delete(ctx, videoID)
	if err != nil {
		return classify(err,
			apperror.KindNotFound, "Could not find id of video to remove",
			apperror.KindDelete, failed)
	}

	_, err = uc.userRepo.UpdateMyVideos(ctx, userID, func(ids []string) []string {
		return entity.RemoveID(ids, deleted.ID)
	})
	if absent(err) {
		return apperror.Wrap(apperror.KindDelete, failed, err)
	}
	if err != nil {
		uc.logger.Error("Failed to prune video %s from myVideos of user %s: %v", deleted.ID, userID, err)
	}
	return nil
}

func (uc *videoUseCase) AddFavourite(ctx context.Context, userID, videoID string) error {
	video, err := uc.toggleFavourite(ctx, userID, videoID, entity.AppendID)
	if err != nil {
		return err
	}

	if video.UserID != userID {
		uc.events.publish(map[string]interface{}{
			"type":     EventFavourite,
			"user_id":  video.UserID,
			"actor_id": userID,
			"video_id": video.ID,
			"priority": 3,
		})
	}
	return nil
}

func (uc *videoUseCase) RemoveFavourite(ctx context.Context, userID, videoID string) error {
	_, err := uc.toggleFavourite(ctx, userID, videoID, entity.RemoveID)
	return err
}

// toggleFavourite reports every failure as a favourite error, absent video
// included.
func (uc *videoUseCase) toggleFavourite(ctx context.Context, userID, videoID string, apply func([]string, string) []string) (*entity.Video, error) {
	const missing, failed = "Could not add video to myFavourties", "Could no get id from params to add video"

	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, classify(err, apperror.KindFavourite, missing, apperror.KindFavourite, failed)
	}

	_, err = uc.userRepo.UpdateFavouriteVideos(ctx, userID, func(ids []string) []string {
		return apply(ids, video.ID)
	})
	if absent(err) {
		return nil, apperror.Wrap(apperror.KindFavourite, failed, err)
	}
	if err != nil {
		uc.logger.Error("Failed to update favouriteVideos of user %s: %v", userID, err)
	}
	return video, nil
}
