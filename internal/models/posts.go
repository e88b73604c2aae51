package models

import (
	"database/sql"
	"errors"
)

// CreatePost inserts a post for userID together with any initial media
// attachments, in one transaction. A failed attachment insert rolls back
// the post as well.
func CreatePost(db *sql.DB, userID int, media ...Media) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	res, err := tx.Exec(`INSERT INTO post (user_to_id) VALUES (?)`, userID)
	if err != nil {
		tx.Rollback()
		return 0, constraintErr(err, "", nil)
	}
	postID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	for _, m := range media {
		if _, err := tx.Exec(`INSERT INTO media (type, url, post_id) VALUES (?, ?, ?)`, m.Type, m.URL, postID); err != nil {
			tx.Rollback()
			return 0, constraintErr(err, "media.url", ErrDuplicateURL)
		}
	}
	return postID, tx.Commit()
}

func GetPost(db *sql.DB, id int) (*Post, error) {
	row := db.QueryRow(`SELECT id, user_to_id FROM post WHERE id = ?`, id)
	var p Post
	if err := row.Scan(&p.ID, &p.UserToID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func ListPostsByUser(db *sql.DB, userID int) ([]Post, error) {
	rows, err := db.Query(`SELECT id, user_to_id FROM post WHERE user_to_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserToID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// DeletePost removes the post; its media and comments cascade.
func DeletePost(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM post WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
