package entity

import "time"

type Video struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Likes       int       `json:"likes"`
	Dislikes    int       `json:"dislikes"`
	Views       int       `json:"views"`
	UserID      string    `json:"user"`
	Comments    []string  `json:"comments"`
}

// VideoWithAuthor is a video whose owner has been populated.
type VideoWithAuthor struct {
	Video
	Author *UserSummary `json:"user"`
}

// VideoDetail additionally populates the video's comments, in list order.
type VideoDetail struct {
	Video
	Author   *UserSummary         `json:"user"`
	Comments []*CommentWithAuthor `json:"comments"`
}

// VideoChanges holds the fields an owner may change; nil fields are kept.
type VideoChanges struct {
	URL         *string
	Title       *string
	Category    *string
	Description *string
	Date        *time.Time
}
