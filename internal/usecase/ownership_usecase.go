package usecase

import (
	"context"

	"videau/internal/repo/persistent"
	"videau/pkg/apperror"
)

// OwnershipUseCase answers whether the caller owns a video or comment.
// A missing resource is reported as a lookup failure, not as not found.
type OwnershipUseCase interface {
	CheckVideoOwner(ctx context.Context, videoID, userID string) error
	CheckCommentOwner(ctx context.Context, commentID, userID string) error
}

type ownershipUseCase struct {
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
}

func NewOwnershipUseCase(videoRepo persistent.VideoRepository, commentRepo persistent.CommentRepository) OwnershipUseCase {
	return &ownershipUseCase{videoRepo: videoRepo, commentRepo: commentRepo}
}

func (uc *ownershipUseCase) CheckVideoOwner(ctx context.Context, videoID, userID string) error {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return apperror.Wrap(apperror.KindLookup, "Can not find the video", err)
	}
	return checkOwner(video.UserID, userID)
}

func (uc *ownershipUseCase) CheckCommentOwner(ctx context.Context, commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return apperror.Wrap(apperror.KindLookup, "Can not find the comment", err)
	}
	return checkOwner(comment.UserID, userID)
}

func checkOwner(ownerID, userID string) error {
	if ownerID == "" || ownerID != userID {
		return apperror.New(apperror.KindForbidden, "User not allowed")
	}
	return nil
}
