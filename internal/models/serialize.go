package models

// API projections. Each Serialize returns the fixed field set exposed to
// clients: no relationship collections, and never the password column.

type UserJSON struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func (u User) Serialize() UserJSON {
	return UserJSON{ID: u.ID, Username: u.Username, Email: u.Email, IsActive: u.IsActive}
}

type FollowerJSON struct {
	UserFromID int `json:"user_from_id"`
	UserToID   int `json:"user_to_id"`
}

func (f Follower) Serialize() FollowerJSON {
	return FollowerJSON{UserFromID: f.UserFromID, UserToID: f.UserToID}
}

type PostJSON struct {
	ID       int `json:"id"`
	UserToID int `json:"user_to_id"`
}

func (p Post) Serialize() PostJSON {
	return PostJSON{ID: p.ID, UserToID: p.UserToID}
}

type MediaJSON struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	URL    string `json:"url"`
	PostID int    `json:"post_id"`
}

func (m Media) Serialize() MediaJSON {
	return MediaJSON{ID: m.ID, Type: m.Type, URL: m.URL, PostID: m.PostID}
}

type CommentJSON struct {
	ID          int    `json:"id"`
	CommentText string `json:"comment_text"`
	AutorID     int    `json:"autor_id"`
	PostID      int    `json:"post_id"`
}

func (c Comment) Serialize() CommentJSON {
	return CommentJSON{ID: c.ID, CommentText: c.CommentText, AutorID: c.AutorID, PostID: c.PostID}
}
