package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndGetMedia(t *testing.T) {
	database := newTestDB(t)
	ana := createTestUser(t, database, "ana")
	postID, err := CreatePost(database, ana)
	require.NoError(t, err)

	id, err := AddMedia(database, int(postID), "image", "https://cdn.example.com/a.jpg")
	require.NoError(t, err)

	m, err := GetMedia(database, int(id))
	require.NoError(t, err)
	require.Equal(t, "image", m.Type)
	require.Equal(t, "https://cdn.example.com/a.jpg", m.URL)
	require.Equal(t, int(postID), m.PostID)
}

func TestAddMediaDuplicateURL(t *testing.T) {
	database := newTestDB(t)
	ana := createTestUser(t, database, "ana")
	first, err := CreatePost(database, ana)
	require.NoError(t, err)
	second, err := CreatePost(database, ana)
	require.NoError(t, err)

	_, err = AddMedia(database, int(first), "image", "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	// url uniqueness is global, not per post
	_, err = AddMedia(database, int(second), "image", "https://cdn.example.com/a.jpg")
	require.ErrorIs(t, err, ErrDuplicateURL)
}

func TestAddMediaMissingPost(t *testing.T) {
	database := newTestDB(t)

	_, err := AddMedia(database, 999, "image", "https://cdn.example.com/a.jpg")
	require.ErrorIs(t, err, ErrMissingReference)
}

func TestDeleteMedia(t *testing.T) {
	database := newTestDB(t)
	ana := createTestUser(t, database, "ana")
	postID, err := CreatePost(database, ana)
	require.NoError(t, err)
	id, err := AddMedia(database, int(postID), "image", "https://cdn.example.com/a.jpg")
	require.NoError(t, err)

	require.NoError(t, DeleteMedia(database, int(id)))
	_, err = GetMedia(database, int(id))
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, DeleteMedia(database, int(id)), ErrNotFound)
}
