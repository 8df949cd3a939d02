package entity

type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Username        string   `json:"username"`
	Password        string   `json:"-"`
	Avatar          string   `json:"avatar"`
	MyVideos        []string `json:"myVideos"`
	FavouriteVideos []string `json:"favouriteVideos"`
}

// UserSummary is the projection other documents embed when they populate
// their owner.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

// UserChanges holds the profile fields a user may change; nil fields are
// kept. Password carries the already hashed value.
type UserChanges struct {
	Name     *string
	Username *string
	Password *string
	Avatar   *string
}
