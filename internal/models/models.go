package models

// Field names mirror the persisted column names, including the stored
// autor_id spelling on comments and user_to_id on posts.

type User struct {
	ID       int
	Username string
	Email    string
	Password string
	IsActive bool
}

// Follower is the directed edge "UserFromID follows UserToID".
type Follower struct {
	UserFromID int
	UserToID   int
}

type Post struct {
	ID       int
	UserToID int
}

type Media struct {
	ID     int
	Type   string
	URL    string
	PostID int
}

type Comment struct {
	ID          int
	CommentText string
	AutorID     int
	PostID      int
}
