package services

import (
	"context"

	"github.com/caojohnny91/hoot-client/internal/client/models"
	"github.com/caojohnny91/hoot-client/internal/logging"
)

// SessionLoader gates cache population on authentication state. The list
// endpoint is access-controlled, so firing it anonymously would be a
// guaranteed failed request; the loader only lists once an identity exists,
// and clears the cache when the session ends.
type SessionLoader struct {
	auth  AuthService
	hoots *HootService
	log   logging.Logger
}

func NewSessionLoader(auth AuthService, hoots *HootService, log logging.Logger) *SessionLoader {
	return &SessionLoader{auth: auth, hoots: hoots, log: log.With("component", "loader")}
}

// Activate resolves the current identity and brings the cache in line with
// it: a concrete identity triggers one full list into the cache, anonymous
// clears it without any network call. Returns the resolved identity; a load
// failure is returned alongside it with the cache left unchanged.
func (l *SessionLoader) Activate(ctx context.Context) (*models.User, error) {
	user := l.auth.CurrentUser(ctx)
	if user == nil {
		l.hoots.Cache().Clear()
		l.log.Debug(ctx, "anonymous session, cache cleared")
		return nil, nil
	}

	if err := l.hoots.Refresh(ctx); err != nil {
		return user, err
	}
	l.log.Info(ctx, "session activated", "username", user.Username)
	return user, nil
}
