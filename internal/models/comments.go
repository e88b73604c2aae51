package models

import (
	"database/sql"
	"errors"
)

// CreateComment records text by autorID on postID. Both referenced rows
// must exist; the schema bounds the text length.
func CreateComment(db *sql.DB, postID, autorID int, text string) (int64, error) {
	res, err := db.Exec(`INSERT INTO comment (comment_text, autor_id, post_id) VALUES (?, ?, ?)`,
		text, autorID, postID)
	if err != nil {
		return 0, constraintErr(err, "", nil)
	}
	return res.LastInsertId()
}

func GetComment(db *sql.DB, id int) (*Comment, error) {
	row := db.QueryRow(`SELECT id, comment_text, autor_id, post_id FROM comment WHERE id = ?`, id)
	var c Comment
	if err := row.Scan(&c.ID, &c.CommentText, &c.AutorID, &c.PostID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func ListCommentsForPost(db *sql.DB, postID int) ([]Comment, error) {
	return listComments(db, `SELECT id, comment_text, autor_id, post_id FROM comment WHERE post_id = ? ORDER BY id`, postID)
}

func ListCommentsByUser(db *sql.DB, autorID int) ([]Comment, error) {
	return listComments(db, `SELECT id, comment_text, autor_id, post_id FROM comment WHERE autor_id = ? ORDER BY id`, autorID)
}

func listComments(db *sql.DB, query string, key int) ([]Comment, error) {
	rows, err := db.Query(query, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cs []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.CommentText, &c.AutorID, &c.PostID); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, rows.Err()
}

func DeleteComment(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM comment WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
