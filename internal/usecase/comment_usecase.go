package usecase

import (
	"context"
	"time"

	"videau/internal/entity"
	"videau/internal/repo/persistent"
	"videau/pkg/apperror"
	"videau/pkg/logger"
)

type CreateCommentInput struct {
	Text string
	Date *time.Time
}

type CommentUseCase interface {
	GetComment(ctx context.Context, commentID string) (*entity.Comment, error)
	CreateComment(ctx context.Context, userID, videoID string, input CreateCommentInput) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID string, changes entity.CommentChanges) (*entity.Comment, error)
	DeleteComment(ctx context.Context, videoID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	events      *notifier
	logger      *logger.Logger
	now         func() time.Time
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		events:      &notifier{publisher: publisher, logger: logger},
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *commentUseCase) GetComment(ctx context.Context, commentID string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, classify(err,
			apperror.KindNotFound, "Could not get comment",
			apperror.KindQuery, "General error on getComment")
	}
	return comment, nil
}

// CreateComment stores the comment and appends it to the video's comments.
// When the video does not exist the comment is already stored and stays
// orphaned; any other failed list update is logged only.
func (uc *commentUseCase) CreateComment(ctx context.Context, userID, videoID string, input CreateCommentInput) (*entity.Comment, error) {
	const failed = "Fail on create new comment"

	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}

	created, err := uc.commentRepo.Create(ctx, &entity.Comment{
		Text:    input.Text,
		Date:    date,
		UserID:  userID,
		VideoID: videoID,
	})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindCreate, failed, err)
	}
	if created == nil {
		return nil, apperror.New(apperror.KindNotFound, "Could not create comment")
	}

	video, err := uc.videoRepo.UpdateComments(ctx, videoID, func(ids []string) []string {
		return entity.AppendID(ids, created.ID)
	})
	if absent(err) {
		uc.logger.Warn("Comment %s stored without parent video %s: %v", created.ID, videoID, err)
		return nil, apperror.Wrap(apperror.KindCreate, failed, err)
	}
	if err != nil {
		uc.logger.Error("Failed to append comment %s to video %s: %v", created.ID, videoID, err)
		return created, nil
	}

	if video.UserID != userID {
		uc.events.publish(map[string]interface{}{
			"type":       EventComment,
			"user_id":    video.UserID,
			"actor_id":   userID,
			"video_id":   video.ID,
			"comment_id": created.ID,
			"priority":   4,
		})
	}

	return created, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, commentID string, changes entity.CommentChanges) (*entity.Comment, error) {
	updated, err := uc.commentRepo.Update(ctx, commentID, changes)
	if err != nil {
		return nil, classify(err,
			apperror.KindUpdateFailed, "Could not update comment of Video",
			apperror.KindUpdate, "Could no get id of comment")
	}
	return updated, nil
}

// DeleteComment removes the comment and prunes it from the video it was
// posted on. videoID is only used for comments that never recorded a
// parent. The two writes are not atomic.
func (uc *commentUseCase) DeleteComment(ctx context.Context, videoID, commentID string) error {
	const failed = "Could not delete comment by id from params"

	deleted, err := uc.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return classify(err,
			apperror.KindNotFound, "Could not find id of comment to remove",
			apperror.KindDelete, failed)
	}

	parentID := deleted.VideoID
	if parentID == "" {
		parentID = videoID
	}
	if parentID != videoID {
		uc.logger.Warn("Comment %s belongs to video %s, not %s", deleted.ID, parentID, videoID)
	}

	_, err = uc.videoRepo.UpdateComments(ctx, parentID, func(ids []string) []string {
		return entity.RemoveID(ids, deleted.ID)
	})
	if absent(err) {
		return apperror.Wrap(apperror.KindDelete, failed, err)
	}
	if err != nil {
		uc.logger.Error("Failed to prune comment %s from video %s: %v", deleted.ID, parentID, err)
	}
	return nil
}
