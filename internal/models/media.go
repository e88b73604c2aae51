package models

import (
	"database/sql"
	"errors"
)

// AddMedia attaches a media item to an existing post.
func AddMedia(db *sql.DB, postID int, mediaType, url string) (int64, error) {
	res, err := db.Exec(`INSERT INTO media (type, url, post_id) VALUES (?, ?, ?)`, mediaType, url, postID)
	if err != nil {
		return 0, constraintErr(err, "media.url", ErrDuplicateURL)
	}
	return res.LastInsertId()
}

func GetMedia(db *sql.DB, id int) (*Media, error) {
	row := db.QueryRow(`SELECT id, type, url, post_id FROM media WHERE id = ?`, id)
	var m Media
	if err := row.Scan(&m.ID, &m.Type, &m.URL, &m.PostID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func ListMediaForPost(db *sql.DB, postID int) ([]Media, error) {
	rows, err := db.Query(`SELECT id, type, url, post_id FROM media WHERE post_id = ? ORDER BY id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Media
	for rows.Next() {
		var m Media
		if err := rows.Scan(&m.ID, &m.Type, &m.URL, &m.PostID); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func DeleteMedia(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
