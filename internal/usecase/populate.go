package usecase

import (
	"context"

	"videau/internal/entity"
	"videau/internal/repo/persistent"
)

// authorIndex loads the summaries of every user in ids.
func authorIndex(ctx context.Context, users persistent.UserRepository, ids []string) (map[string]*entity.UserSummary, error) {
	index := make(map[string]*entity.UserSummary, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	found, err := users.ListByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	for _, user := range found {
		index[user.ID] = user.Summary()
	}
	return index, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func withAuthors(ctx context.Context, users persistent.UserRepository, videos []*entity.Video) ([]*entity.VideoWithAuthor, error) {
	ownerIDs := make([]string, len(videos))
	for i, video := range videos {
		ownerIDs[i] = video.UserID
	}

	authors, err := authorIndex(ctx, users, ownerIDs)
	if err != nil {
		return nil, err
	}

	populated := make([]*entity.VideoWithAuthor, len(videos))
	for i, video := range videos {
		populated[i] = &entity.VideoWithAuthor{Video: *video, Author: authors[video.UserID]}
	}
	return populated, nil
}
