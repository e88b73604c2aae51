package models

import "database/sql"

// Follow records the edge "fromID follows toID". Both endpoints must exist
// and a pair can only be recorded once.
func Follow(db *sql.DB, fromID, toID int) error {
	_, err := db.Exec(`INSERT INTO follower (user_from_id, user_to_id) VALUES (?, ?)`, fromID, toID)
	if err != nil {
		return constraintErr(err, "follower.user_from_id, follower.user_to_id", ErrAlreadyFollowing)
	}
	return nil
}

func Unfollow(db *sql.DB, fromID, toID int) error {
	res, err := db.Exec(`DELETE FROM follower WHERE user_from_id = ? AND user_to_id = ?`, fromID, toID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Followers lists the edges pointing at userID (who follows them).
func Followers(db *sql.DB, userID int) ([]Follower, error) {
	return listFollows(db, `SELECT user_from_id, user_to_id FROM follower WHERE user_to_id = ? ORDER BY user_from_id`, userID)
}

// Following lists the edges leaving userID (whom they follow).
func Following(db *sql.DB, userID int) ([]Follower, error) {
	return listFollows(db, `SELECT user_from_id, user_to_id FROM follower WHERE user_from_id = ? ORDER BY user_to_id`, userID)
}

func listFollows(db *sql.DB, query string, userID int) ([]Follower, error) {
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var edges []Follower
	for rows.Next() {
		var f Follower
		if err := rows.Scan(&f.UserFromID, &f.UserToID); err != nil {
			return nil, err
		}
		edges = append(edges, f)
	}
	return edges, rows.Err()
}
