package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{ID: 1, Username: "ana", Email: "ana@x.com", Password: "secret", IsActive: true}
	m := jsonKeys(t, u.Serialize())
	require.NotContains(t, m, "password")
	require.Equal(t, "ana", m["username"])
}

// Each projection must expose exactly its declared field set.
func TestSerializeFieldSets(t *testing.T) {
	cases := []struct {
		name string
		v    any
		keys []string
	}{
		{"user", User{}.Serialize(), []string{"id", "username", "email", "is_active"}},
		{"follower", Follower{}.Serialize(), []string{"user_from_id", "user_to_id"}},
		{"post", Post{}.Serialize(), []string{"id", "user_to_id"}},
		{"media", Media{}.Serialize(), []string{"id", "type", "url", "post_id"}},
		{"comment", Comment{}.Serialize(), []string{"id", "comment_text", "autor_id", "post_id"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := jsonKeys(t, tc.v)
			require.Len(t, m, len(tc.keys))
			for _, k := range tc.keys {
				require.Contains(t, m, k)
			}
		})
	}
}

func TestSerializeValues(t *testing.T) {
	c := Comment{ID: 100, CommentText: "hi", AutorID: 1, PostID: 10}
	out := c.Serialize()
	require.Equal(t, CommentJSON{ID: 100, CommentText: "hi", AutorID: 1, PostID: 10}, out)

	f := Follower{UserFromID: 1, UserToID: 2}
	require.Equal(t, FollowerJSON{UserFromID: 1, UserToID: 2}, f.Serialize())
}
