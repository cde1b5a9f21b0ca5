package gateway

import (
	"context"

	"github.com/caojohnny91/hoot-client/internal/client/models"
)

// TokenSource yields the bearer credential attached to protected calls.
// An empty token means the request goes out unauthenticated and the backend
// is expected to reject it for protected routes.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the API contract against the hoot backend.
type Client interface {
	SignUp(ctx context.Context, creds models.Credentials) (string, error)
	SignIn(ctx context.Context, creds models.Credentials) (string, error)

	ListHoots(ctx context.Context) ([]models.Hoot, error)
	GetHoot(ctx context.Context, hootID string) (*models.Hoot, error)
	CreateHoot(ctx context.Context, draft models.HootDraft) (*models.Hoot, error)
	UpdateHoot(ctx context.Context, hootID string, draft models.HootDraft) (*models.Hoot, error)
	DeleteHoot(ctx context.Context, hootID string) (string, error)

	AddComment(ctx context.Context, hootID string, draft models.CommentDraft) (*models.Comment, error)
	GetComment(ctx context.Context, hootID, commentID string) (*models.Comment, error)
	UpdateComment(ctx context.Context, hootID, commentID string, draft models.CommentDraft) (*models.Comment, error)
	DeleteComment(ctx context.Context, hootID, commentID string) (string, error)
}
