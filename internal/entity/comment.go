package entity

import "time"

type Comment struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
	Likes    int       `json:"likes"`
	Dislikes int       `json:"dislikes"`
	UserID   string    `json:"user"`
	VideoID  string    `json:"video"`
}

type CommentWithAuthor struct {
	Comment
	Author *UserSummary `json:"user"`
}

type CommentChanges struct {
	Text *string
	Date *time.Time
}
