package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"videau/internal/entity"
	"videau/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoFixture struct {
	videos    *MockVideoRepository
	users     *MockUserRepository
	comments  *MockCommentRepository
	publisher *recordingPublisher
	uc        *videoUseCase
}

func newVideoFixture() *videoFixture {
	f := &videoFixture{
		videos:    new(MockVideoRepository),
		users:     new(MockUserRepository),
		comments:  new(MockCommentRepository),
		publisher: newRecordingPublisher(),
	}
	f.uc = NewVideoUseCase(f.videos, f.users, f.comments, f.publisher, quietLogger()).(*videoUseCase)
	f.uc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return f
}

func waitForTask(t *testing.T, p *recordingPublisher) map[string]interface{} {
	t.Helper()
	select {
	case task := <-p.tasks:
		return task
	case <-time.After(time.Second):
		t.Fatal("expected a notification task")
		return nil
	}
}

func assertNoTask(t *testing.T, p *recordingPublisher) {
	t.Helper()
	select {
	case task := <-p.tasks:
		t.Fatalf("unexpected notification task %v", task)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestListVideos_PopulatesAuthors(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("List", ctx).Return([]*entity.Video{
		{ID: "v1", UserID: "u1"},
		{ID: "v2", UserID: "u2"},
		{ID: "v3", UserID: "u1"},
	}, nil)
	f.users.On("ListByIDs", ctx, []string{"u1", "u2"}).Return([]*entity.User{
		{ID: "u1", Username: "alice", Avatar: "a.png", Password: "hash"},
	}, nil)

	videos, err := f.uc.ListVideos(ctx)

	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, &entity.UserSummary{ID: "u1", Username: "alice", Avatar: "a.png"}, videos[0].Author)
	assert.Nil(t, videos[1].Author)
	assert.Equal(t, "alice", videos[2].Author.Username)
}

func TestListVideos_Empty(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("List", ctx).Return([]*entity.Video{}, nil)

	videos, err := f.uc.ListVideos(ctx)

	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
	f.users.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
}

func TestListVideos_Error(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("List", ctx).Return(nil, errors.New("db down"))

	_, err := f.uc.ListVideos(ctx)
	assertAppError(t, err, apperror.KindQuery, "General error on getting videos")
}

func TestListByCategory(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("ListByCategory", ctx, "music").Return([]*entity.Video{{ID: "v1", UserID: "u1"}}, nil)
	f.videos.On("ListByCategory", ctx, "broken").Return(nil, errors.New("db down"))
	f.users.On("ListByIDs", ctx, []string{"u1"}).Return([]*entity.User{{ID: "u1", Username: "alice"}}, nil)

	videos, err := f.uc.ListByCategory(ctx, "music")
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	_, err = f.uc.ListByCategory(ctx, "broken")
	assertAppError(t, err, apperror.KindQuery, "General error on getByCategory")
}

func TestGetVideo_PopulatesCommentsInOrder(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("GetByID", ctx, "v1").Return(&entity.Video{ID: "v1", UserID: "u1", Comments: []string{"c2", "c1", "gone"}}, nil)
	f.comments.On("ListByIDs", ctx, []string{"c2", "c1", "gone"}).Return([]*entity.Comment{
		{ID: "c2", UserID: "u2"},
		{ID: "c1", UserID: "u1"},
	}, nil)
	f.users.On("ListByIDs", ctx, []string{"u1", "u2"}).Return([]*entity.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}, nil)

	detail, err := f.uc.GetVideo(ctx, "v1")

	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Author.Username)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "c2", detail.Comments[0].ID)
	assert.Equal(t, "bob", detail.Comments[0].Author.Username)
	assert.Equal(t, "c1", detail.Comments[1].ID)
}

func TestGetVideo_Errors(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("GetByID", ctx, "gone").Return(nil, entity.ErrNotFound)
	f.videos.On("GetByID", ctx, "not-an-id").Return(nil, entity.ErrInvalidID)

	_, err := f.uc.GetVideo(ctx, "gone")
	assertAppError(t, err, apperror.KindNotFound, "Could not find the id of the video")

	_, err = f.uc.GetVideo(ctx, "not-an-id")
	assertAppError(t, err, apperror.KindQuery, "Could not get id from params")
}

func TestCreateVideo_AppendsToMyVideos(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("Create", ctx, mock.MatchedBy(func(v *entity.Video) bool {
		return v.UserID == "u1" && v.Title == "Intro" && v.Date.Equal(f.uc.now())
	})).Return(&entity.Video{ID: "v9", UserID: "u1", Title: "Intro", Category: "music"}, nil)
	f.users.On("UpdateMyVideos", ctx, "u1", listChange([]string{"v1"}, []string{"v1", "v9"})).
		Return(&entity.User{ID: "u1", MyVideos: []string{"v1", "v9"}}, nil)

	video, err := f.uc.CreateVideo(ctx, "u1", CreateVideoInput{
		URL: "https://v/x.mp4", Title: "Intro", Category: "music", Description: "d",
	})

	require.NoError(t, err)
	assert.Equal(t, "v9", video.ID)
	f.users.AssertExpectations(t)

	task := waitForTask(t, f.publisher)
	assert.Equal(t, EventNewVideo, task["type"])
	assert.Equal(t, "v9", task["video_id"])
}

func TestCreateVideo_UsesGivenDate(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()
	date := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

	f.videos.On("Create", ctx, mock.MatchedBy(func(v *entity.Video) bool {
		return v.Date.Equal(date)
	})).Return(&entity.Video{ID: "v9", UserID: "u1"}, nil)
	f.users.On("UpdateMyVideos", ctx, "u1", mock.Anything).Return(nil, errors.New("write conflict"))

	video, err := f.uc.CreateVideo(ctx, "u1", CreateVideoInput{Title: "t", Date: &date})

	require.NoError(t, err, "a failed list update does not fail the request")
	assert.Equal(t, "v9", video.ID)
}

func TestCreateVideo_Errors(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("Create", ctx, mock.MatchedBy(func(v *entity.Video) bool { return v.Title == "fail" })).
		Return(nil, errors.New("constraint"))
	f.videos.On("Create", ctx, mock.MatchedBy(func(v *entity.Video) bool { return v.Title == "empty" })).
		Return(nil, nil)

	_, err := f.uc.CreateVideo(ctx, "u1", CreateVideoInput{Title: "fail"})
	assertAppError(t, err, apperror.KindCreate, "Fail on create new video")

	_, err = f.uc.CreateVideo(ctx, "u1", CreateVideoInput{Title: "empty"})
	assertAppError(t, err, apperror.KindNotFound, "Could not create video")
}

func TestCreateVideo_MissingCreator(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("Create", ctx, mock.Anything).Return(&entity.Video{ID: "v9", UserID: "ghost"}, nil)
	f.users.On("UpdateMyVideos", ctx, "ghost", mock.Anything).Return(nil, entity.ErrNotFound)

	_, err := f.uc.CreateVideo(ctx, "ghost", CreateVideoInput{Title: "t"})
	assertAppError(t, err, apperror.KindCreate, "Fail on create new video")
	assertNoTask(t, f.publisher)
}

func TestListMyVideos(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.users.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", MyVideos: []string{"v1"}}, nil)
	f.users.On("GetByID", ctx, "gone").Return(nil, entity.ErrNotFound)
	f.users.On("GetByID", ctx, "bad").Return(nil, entity.ErrInvalidID)
	f.videos.On("ListByIDs", ctx, []string{"v1"}).Return([]*entity.Video{{ID: "v1", UserID: "u1"}}, nil)
	f.users.On("ListByIDs", ctx, []string{"u1"}).Return([]*entity.User{{ID: "u1", Username: "alice"}}, nil)

	videos, err := f.uc.ListMyVideos(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "alice", videos[0].Author.Username)

	_, err = f.uc.ListMyVideos(ctx, "gone")
	assertAppError(t, err, apperror.KindNotFound, "Could not populate myVideos")

	_, err = f.uc.ListMyVideos(ctx, "bad")
	assertAppError(t, err, apperror.KindQuery, "Could not get user to populate")
}

func TestListFavourites(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.users.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", FavouriteVideos: []string{"v7"}}, nil)
	f.users.On("GetByID", ctx, "gone").Return(nil, entity.ErrNotFound)
	f.videos.On("ListByIDs", ctx, []string{"v7"}).Return([]*entity.Video{}, nil)

	videos, err := f.uc.ListFavourites(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, videos)

	_, err = f.uc.ListFavourites(ctx, "gone")
	assertAppError(t, err, apperror.KindNotFound, "Could not populate favouriteVideos")
}

func TestUpdateVideo(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()
	title := "New title"

	f.videos.On("Update", ctx, "v1", entity.VideoChanges{Title: &title}).
		Return(&entity.Video{ID: "v1", UserID: "u1", Title: title, Category: "music", Comments: []string{"c1"}}, nil)
	f.videos.On("Update", ctx, "gone", entity.VideoChanges{}).Return(nil, entity.ErrNotFound)
	f.videos.On("Update", ctx, "bad", entity.VideoChanges{}).Return(nil, entity.ErrInvalidID)

	updated, err := f.uc.UpdateVideo(ctx, "v1", entity.VideoChanges{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, []string{"c1"}, updated.Comments)
	f.videos.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)

	_, err = f.uc.UpdateVideo(ctx, "gone", entity.VideoChanges{})
	assertAppError(t, err, apperror.KindUpdateFailed, "Found the video but could not update")

	_, err = f.uc.UpdateVideo(ctx, "bad", entity.VideoChanges{})
	assertAppError(t, err, apperror.KindUpdate, "General error on updating the video")
}

func TestDeleteVideo_PrunesMyVideos(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("Delete", ctx, "v1").Return(&entity.Video{ID: "v1", UserID: "u1"}, nil)
	f.users.On("UpdateMyVideos", ctx, "u1", listChange([]string{"v0", "v1"}, []string{"v0"})).
		Return(&entity.User{ID: "u1", MyVideos: []string{"v0"}}, nil)

	require.NoError(t, f.uc.DeleteVideo(ctx, "u1", "v1"))
	f.users.AssertExpectations(t)
}

func TestDeleteVideo_Errors(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("Delete", ctx, "gone").Return(nil, entity.ErrNotFound)
	f.videos.On("Delete", ctx, "bad").Return(nil, entity.ErrInvalidID)
	f.videos.On("Delete", ctx, "v1").Return(&entity.Video{ID: "v1", UserID: "ghost"}, nil)
	f.users.On("UpdateMyVideos", ctx, "ghost", mock.Anything).Return(nil, entity.ErrNotFound)

	assertAppError(t, f.uc.DeleteVideo(ctx, "u1", "gone"), apperror.KindNotFound, "Could not find id of video to remove")
	assertAppError(t, f.uc.DeleteVideo(ctx, "u1", "bad"), apperror.KindDelete, "Could not get id from params")
	assertAppError(t, f.uc.DeleteVideo(ctx, "ghost", "v1"), apperror.KindDelete, "Could not get id from params")
}

func TestAddFavourite(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("GetByID", ctx, "v1").Return(&entity.Video{ID: "v1", UserID: "owner"}, nil)
	f.users.On("UpdateFavouriteVideos", ctx, "fan", listChange([]string{}, []string{"v1"})).
		Return(&entity.User{ID: "fan", FavouriteVideos: []string{"v1"}}, nil)

	require.NoError(t, f.uc.AddFavourite(ctx, "fan", "v1"))

	task := waitForTask(t, f.publisher)
	assert.Equal(t, EventFavourite, task["type"])
	assert.Equal(t, "owner", task["user_id"])
	assert.Equal(t, "fan", task["actor_id"])
}

func TestAddFavourite_OwnVideoPublishesNothing(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("GetByID", ctx, "v1").Return(&entity.Video{ID: "v1", UserID: "u1"}, nil)
	f.users.On("UpdateFavouriteVideos", ctx, "u1", mock.Anything).Return(&entity.User{ID: "u1"}, nil)

	require.NoError(t, f.uc.AddFavourite(ctx, "u1", "v1"))
	assertNoTask(t, f.publisher)
}

func TestRemoveFavourite(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("GetByID", ctx, "v1").Return(&entity.Video{ID: "v1", UserID: "owner"}, nil)
	f.users.On("UpdateFavouriteVideos", ctx, "fan", listChange([]string{"v1", "v2"}, []string{"v2"})).
		Return(&entity.User{ID: "fan", FavouriteVideos: []string{"v2"}}, nil)

	require.NoError(t, f.uc.RemoveFavourite(ctx, "fan", "v1"))
	f.users.AssertExpectations(t)
	assertNoTask(t, f.publisher)
}

func TestFavourite_ErrorsAreUniform(t *testing.T) {
	f := newVideoFixture()
	ctx := context.Background()

	f.videos.On("GetByID", ctx, "gone").Return(nil, entity.ErrNotFound)
	f.videos.On("GetByID", ctx, "bad").Return(nil, entity.ErrInvalidID)

	err := f.uc.AddFavourite(ctx, "u1", "gone")
	assertAppError(t, err, apperror.KindFavourite, "Could not add video to myFavourties")

	err = f.uc.RemoveFavourite(ctx, "u1", "bad")
	assertAppError(t, err, apperror.KindFavourite, "Could no get id from params to add video")
}
