package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

func testSession() Session {
	return Session{
		User:  api.User{ID: "u1", Email: "a@b.com", Name: "Ada", IsVerified: true},
		Token: "tok-abc",
	}
}

func TestStore_LoginRestoreRoundTrip(t *testing.T) {
	port := NewMemPort()

	first := NewStore(port)
	require.NoError(t, first.Login(testSession()))
	assert.True(t, first.IsAuthenticated())

	// A fresh store over the same port simulates a process restart.
	second := NewStore(port)
	sess := second.Restore()
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.User.ID)
	assert.Equal(t, "tok-abc", sess.Token)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "tok-abc", second.Token())
}

func TestStore_LogoutThenRestoreIsEmpty(t *testing.T) {
	port := NewMemPort()
	store := NewStore(port)
	require.NoError(t, store.Login(testSession()))
	require.NoError(t, store.Logout())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, NewStore(port).Restore())
}

func TestStore_RestoreDropsSessionWhenFilesRemoved(t *testing.T) {
	port := NewMemPort()
	store := NewStore(port)
	require.NoError(t, store.Login(testSession()))

	// Another process removed the persisted pair; a re-read must not
	// keep handing out the old credential.
	require.NoError(t, port.Clear(tokenName, userName))
	assert.Nil(t, store.Restore())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Current())
}

func TestStore_LogoutIdempotent(t *testing.T) {
	store := NewStore(NewMemPort())
	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
}

func TestStore_RestoreMalformedTreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		token string
		user  string
	}{
		{"nothing persisted", "", ""},
		{"token without user", "tok", ""},
		{"user without token", "", `{"id":"u1"}`},
		{"user not json", "tok", "{{{"},
		{"user missing id", "tok", `{"email":"a@b.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := NewMemPort()
			if tt.token != "" {
				port.Write(tokenName, []byte(tt.token))
			}
			if tt.user != "" {
				port.Write(userName, []byte(tt.user))
			}
			store := NewStore(port)
			assert.Nil(t, store.Restore())
			assert.False(t, store.IsAuthenticated())
		})
	}
}

func TestStore_LoginIdempotent(t *testing.T) {
	store := NewStore(NewMemPort())
	require.NoError(t, store.Login(testSession()))
	require.NoError(t, store.Login(testSession()))
	assert.True(t, store.IsAuthenticated())
}

func TestStore_SetUserKeepsToken(t *testing.T) {
	port := NewMemPort()
	store := NewStore(port)
	require.NoError(t, store.Login(testSession()))

	updated := api.User{ID: "u1", Email: "a@b.com", Name: "Ada Lovelace", IsVerified: true}
	require.NoError(t, store.SetUser(updated))
	assert.Equal(t, "Ada Lovelace", store.Current().User.Name)
	assert.Equal(t, "tok-abc", store.Token())

	// The new name survives a restart.
	sess := NewStore(port).Restore()
	require.NotNil(t, sess)
	assert.Equal(t, "Ada Lovelace", sess.User.Name)
}

func TestFilePort_RoundTrip(t *testing.T) {
	port := NewFilePort(t.TempDir())
	store := NewStore(port)
	require.NoError(t, store.Login(testSession()))

	sess := NewStore(port).Restore()
	require.NotNil(t, sess)
	assert.Equal(t, "tok-abc", sess.Token)

	require.NoError(t, store.Logout())
	assert.Nil(t, NewStore(port).Restore())
}
