package persistent

import (
	"videau/internal/entity"
	"videau/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:              m.ID,
		Name:            m.Name,
		Username:        m.Username,
		Password:        m.Password,
		Avatar:          m.Avatar,
		MyVideos:        nonNil(m.MyVideos),
		FavouriteVideos: nonNil(m.FavouriteVideos),
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:              e.ID,
		Name:            e.Name,
		Username:        e.Username,
		Password:        e.Password,
		Avatar:          e.Avatar,
		MyVideos:        nonNil(e.MyVideos),
		FavouriteVideos: nonNil(e.FavouriteVideos),
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:          m.ID,
		URL:         m.URL,
		Title:       m.Title,
		Category:    m.Category,
		Description: m.Description,
		Date:        m.Date,
		Likes:       m.Likes,
		Dislikes:    m.Dislikes,
		Views:       m.Views,
		UserID:      m.UserID,
		Comments:    nonNil(m.Comments),
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:          e.ID,
		URL:         e.URL,
		Title:       e.Title,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
		Likes:       e.Likes,
		Dislikes:    e.Dislikes,
		Views:       e.Views,
		UserID:      e.UserID,
		Comments:    nonNil(e.Comments),
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:       m.ID,
		Text:     m.Text,
		Date:     m.Date,
		Likes:    m.Likes,
		Dislikes: m.Dislikes,
		UserID:   m.UserID,
		VideoID:  m.VideoID,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       e.ID,
		Text:     e.Text,
		Date:     e.Date,
		Likes:    e.Likes,
		Dislikes: e.Dislikes,
		UserID:   e.UserID,
		VideoID:  e.VideoID,
	}
}

// nonNil keeps empty back-reference lists serialized as [] rather than null.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// The *Columns helpers turn a change set into the columns it touches, so an
// update never writes the back-reference lists.

func userColumns(c entity.UserChanges) map[string]interface{} {
	columns := map[string]interface{}{}
	if c.Name != nil {
		columns["name"] = *c.Name
	}
	if c.Username != nil {
		columns["username"] = *c.Username
	}
	if c.Password != nil {
		columns["password"] = *c.Password
	}
	if c.Avatar != nil {
		columns["avatar"] = *c.Avatar
	}
	return columns
}

func videoColumns(c entity.VideoChanges) map[string]interface{} {
	columns := map[string]interface{}{}
	if c.URL != nil {
		columns["url"] = *c.URL
	}
	if c.Title != nil {
		columns["title"] = *c.Title
	}
	if c.Category != nil {
		columns["category"] = *c.Category
	}
	if c.Description != nil {
		columns["description"] = *c.Description
	}
	if c.Date != nil {
		columns["date"] = *c.Date
	}
	return columns
}

func commentColumns(c entity.CommentChanges) map[string]interface{} {
	columns := map[string]interface{}{}
	if c.Text != nil {
		columns["text"] = *c.Text
	}
	if c.Date != nil {
		columns["date"] = *c.Date
	}
	return columns
}
