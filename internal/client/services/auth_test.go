package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caojohnny91/hoot-client/internal/client/gateway"
	"github.com/caojohnny91/hoot-client/internal/client/models"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	db, err := sql.Open("sqlite", fmt.Sprintf("file:authsvc%d?mode=memory&cache=shared", dbSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func storedToken(t *testing.T, db *sql.DB) string {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM credentials WHERE key='token'`).Scan(&v)
	if err == sql.ErrNoRows {
		return ""
	}
	require.NoError(t, err)
	return string(v)
}

func TestSignIn_PersistsTokenAndReturnsIdentity(t *testing.T) {
	db := setupDB(t)
	token := makeToken(t, "u1", "a", time.Time{})
	fake := &fakeClient{SignInToken: token}
	auth := NewAuthService(fake, db, testLogger())
	ctx := context.Background()

	user, err := auth.SignIn(ctx, models.Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)
	require.Equal(t, &models.User{ID: "u1", Username: "a"}, user)

	assert.Equal(t, 1, fake.SignInCalls)
	assert.Equal(t, "a", fake.LastCreds.Username)
	assert.Equal(t, token, storedToken(t, db))
	assert.Equal(t, "a", auth.LastUsername(ctx))

	current := auth.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)
}

func TestSignIn_RemoteRejectLeavesSessionUnchanged(t *testing.T) {
	db := setupDB(t)
	fake := &fakeClient{SignInErr: &gateway.RemoteError{Status: 401, Message: "Invalid credentials."}}
	auth := NewAuthService(fake, db, testLogger())
	ctx := context.Background()

	_, err := auth.SignIn(ctx, models.Credentials{Username: "a", Password: "wrong"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	var re *gateway.RemoteError
	require.ErrorAs(t, err, &re, "remote cause must stay reachable")
	assert.Equal(t, 401, re.Status)

	assert.Empty(t, storedToken(t, db))
	assert.Nil(t, auth.CurrentUser(ctx))
}

func TestSignIn_InvalidCredentialsSkipTheWire(t *testing.T) {
	db := setupDB(t)
	fake := &fakeClient{}
	auth := NewAuthService(fake, db, testLogger())

	_, err := auth.SignIn(context.Background(), models.Credentials{Username: "", Password: "b"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.ErrorIs(t, err, models.ErrEmptyUsername)
	assert.Zero(t, fake.SignInCalls)
}

func TestSignIn_UnusableTokenFromServer(t *testing.T) {
	db := setupDB(t)
	fake := &fakeClient{SignInToken: "not-a-jwt"}
	auth := NewAuthService(fake, db, testLogger())
	ctx := context.Background()

	_, err := auth.SignIn(ctx, models.Credentials{Username: "a", Password: "b"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Empty(t, storedToken(t, db), "nothing persisted when the token cannot be decoded")
}

func TestSignUp_DuplicateAccount(t *testing.T) {
	db := setupDB(t)
	fake := &fakeClient{SignUpErr: &gateway.RemoteError{Status: 409, Message: "Username already taken."}}
	auth := NewAuthService(fake, db, testLogger())

	_, err := auth.SignUp(context.Background(), models.Credentials{Username: "a", Password: "b"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "sign-up", authErr.Op)
	assert.Equal(t, 1, fake.SignUpCalls)
}

func TestCurrentUser_AnonymousStates(t *testing.T) {
	db := setupDB(t)
	auth := NewAuthService(&fakeClient{}, db, testLogger())
	ctx := context.Background()

	t.Run("no token stored", func(t *testing.T) {
		assert.Nil(t, auth.CurrentUser(ctx))
	})

	t.Run("malformed token stored", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO credentials(key,value) VALUES('token','garbage')`)
		require.NoError(t, err)
		assert.Nil(t, auth.CurrentUser(ctx), "malformed token must read as anonymous, not error")
	})

	t.Run("expired token stored", func(t *testing.T) {
		expired := makeToken(t, "u1", "a", time.Now().Add(-time.Hour))
		_, err := db.Exec(`UPDATE credentials SET value=? WHERE key='token'`, expired)
		require.NoError(t, err)
		assert.Nil(t, auth.CurrentUser(ctx))
	})

	t.Run("token without identity payload", func(t *testing.T) {
		token := makeToken(t, "", "", time.Time{})
		_, err := db.Exec(`UPDATE credentials SET value=? WHERE key='token'`, token)
		require.NoError(t, err)
		assert.Nil(t, auth.CurrentUser(ctx))
	})
}

func TestSignOut_ClearsTokenKeepsUsernameHint(t *testing.T) {
	db := setupDB(t)
	fake := &fakeClient{SignInToken: makeToken(t, "u1", "a", time.Time{})}
	auth := NewAuthService(fake, db, testLogger())
	ctx := context.Background()

	_, err := auth.SignIn(ctx, models.Credentials{Username: "a", Password: "b"})
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(ctx))

	assert.Empty(t, storedToken(t, db))
	assert.Nil(t, auth.CurrentUser(ctx))
	assert.Equal(t, "a", auth.LastUsername(ctx), "prompt default survives sign-out")
}

func TestTokenSource_YieldsStoredToken(t *testing.T) {
	db := setupDB(t)
	token := makeToken(t, "u1", "a", time.Time{})
	_, err := db.Exec(`INSERT INTO credentials(key,value) VALUES('token',?)`, token)
	require.NoError(t, err)

	src := NewTokenSource(db)

	got, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestTokenSource_AbsentTokenIsEmpty(t *testing.T) {
	src := NewTokenSource(setupDB(t))

	got, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
