package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// makeToken builds a signed token in the backend's claim shape. The client
// parses unverified, so the signing key is irrelevant here.
func makeToken(t *testing.T, id, username string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"payload": map[string]any{"_id": id, "username": username},
	}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// fakeClient implements gateway.Client for service unit tests, recording
// last-call arguments and call counts.
type fakeClient struct {
	SignUpToken string
	SignUpErr   error
	SignUpCalls int

	SignInToken string
	SignInErr   error
	SignInCalls int
	LastCreds   models.Credentials

	ListHootsRet   []models.Hoot
	ListHootsErr   error
	ListHootsCalls int

	GetHootRet *models.Hoot
	GetHootErr error
	LastGetID  string

	CreateHootRet   *models.Hoot
	CreateHootErr   error
	CreateHootCalls int
	LastCreateDraft models.HootDraft

	UpdateHootRet   *models.Hoot
	UpdateHootErr   error
	LastUpdateID    string
	LastUpdateDraft models.HootDraft

	DeleteHootRet string
	DeleteHootErr error
	LastDeleteID  string

	AddCommentRet      *models.Comment
	AddCommentErr      error
	LastAddCommentHoot string
	LastCommentDraft   models.CommentDraft

	GetCommentRet *models.Comment
	GetCommentErr error

	UpdateCommentRet *models.Comment
	UpdateCommentErr error
	LastUpdateCmtID  string

	DeleteCommentRet string
	DeleteCommentErr error
	LastDeleteCmtID  string
}

func (f *fakeClient) SignUp(ctx context.Context, creds models.Credentials) (string, error) {
	f.SignUpCalls++
	f.LastCreds = creds
	return f.SignUpToken, f.SignUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	f.SignInCalls++
	f.LastCreds = creds
	return f.SignInToken, f.SignInErr
}

func (f *fakeClient) ListHoots(ctx context.Context) ([]models.Hoot, error) {
	f.ListHootsCalls++
	return f.ListHootsRet, f.ListHootsErr
}

func (f *fakeClient) GetHoot(ctx context.Context, hootID string) (*models.Hoot, error) {
	f.LastGetID = hootID
	return f.GetHootRet, f.GetHootErr
}

func (f *fakeClient) CreateHoot(ctx context.Context, draft models.HootDraft) (*models.Hoot, error) {
	f.CreateHootCalls++
	f.LastCreateDraft = draft
	return f.CreateHootRet, f.CreateHootErr
}

func (f *fakeClient) UpdateHoot(ctx context.Context, hootID string, draft models.HootDraft) (*models.Hoot, error) {
	f.LastUpdateID = hootID
	f.LastUpdateDraft = draft
	return f.UpdateHootRet, f.UpdateHootErr
}

func (f *fakeClient) DeleteHoot(ctx context.Context, hootID string) (string, error) {
	f.LastDeleteID = hootID
	return f.DeleteHootRet, f.DeleteHootErr
}

func (f *fakeClient) AddComment(ctx context.Context, hootID string, draft models.CommentDraft) (*models.Comment, error) {
	f.LastAddCommentHoot = hootID
	f.LastCommentDraft = draft
	return f.AddCommentRet, f.AddCommentErr
}

func (f *fakeClient) GetComment(ctx context.Context, hootID, commentID string) (*models.Comment, error) {
	return f.GetCommentRet, f.GetCommentErr
}

func (f *fakeClient) UpdateComment(ctx context.Context, hootID, commentID string, draft models.CommentDraft) (*models.Comment, error) {
	f.LastUpdateCmtID = commentID
	f.LastCommentDraft = draft
	return f.UpdateCommentRet, f.UpdateCommentErr
}

func (f *fakeClient) DeleteComment(ctx context.Context, hootID, commentID string) (string, error) {
	f.LastDeleteCmtID = commentID
	return f.DeleteCommentRet, f.DeleteCommentErr
}
