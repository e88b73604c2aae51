package models

import (
	"errors"
	"strings"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrDuplicateURL     = errors.New("media url already exists")
	ErrAlreadyFollowing = errors.New("follow edge already exists")
	ErrMissingReference = errors.New("referenced row does not exist")
	ErrCommentTooLong   = errors.New("comment text exceeds length bound")
)

// constraintErr maps a sqlite constraint failure onto a package sentinel.
// uniqueCol names the "table.column" whose UNIQUE violation corresponds to
// dup; any foreign-key failure becomes ErrMissingReference.
func constraintErr(err error, uniqueCol string, dup error) error {
	s := err.Error()
	if uniqueCol != "" && strings.Contains(s, "UNIQUE constraint failed: "+uniqueCol) {
		return dup
	}
	if strings.Contains(s, "FOREIGN KEY constraint failed") {
		return ErrMissingReference
	}
	if strings.Contains(s, "CHECK constraint failed: comment_text_len") {
		return ErrCommentTooLong
	}
	return err
}
