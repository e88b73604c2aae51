package models

import (
	"database/sql"
	"errors"
)

// CreateUser inserts a user and returns its generated id. The password is
// stored as given; hashing policy belongs to the caller.
func CreateUser(db *sql.DB, username, email, password string, isActive bool) (int64, error) {
	res, err := db.Exec(`INSERT INTO user (username, email, password, is_active) VALUES (?, ?, ?, ?)`,
		username, email, password, isActive)
	if err != nil {
		return 0, constraintErr(err, "user.email", ErrDuplicateEmail)
	}
	return res.LastInsertId()
}

func GetUser(db *sql.DB, id int) (*User, error) {
	row := db.QueryRow(`SELECT id, username, email, password, is_active FROM user WHERE id = ?`, id)
	return scanUser(row)
}

func GetUserByEmail(db *sql.DB, email string) (*User, error) {
	row := db.QueryRow(`SELECT id, username, email, password, is_active FROM user WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func ListUsers(db *sql.DB) ([]User, error) {
	rows, err := db.Query(`SELECT id, username, email, password, is_active FROM user ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsActive); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetUserActive flips the account-status flag.
func SetUserActive(db *sql.DB, id int, active bool) error {
	res, err := db.Exec(`UPDATE user SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// DeleteUser removes the user; its posts, comments and follow edges go with
// it through the schema's cascade rules.
func DeleteUser(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM user WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
