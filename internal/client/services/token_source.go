package services

import (
	"context"
	"database/sql"

	"github.com/caojohnny91/hoot-client/internal/client/gateway"
	"github.com/caojohnny91/hoot-client/internal/client/repositories/credentials"
)

// tokenSource adapts the credential store to the gateway's TokenSource, so
// every outbound call carries whatever credential is currently persisted.
type tokenSource struct {
	db *sql.DB
}

func NewTokenSource(db *sql.DB) gateway.TokenSource {
	return &tokenSource{db: db}
}

func (t *tokenSource) Token(ctx context.Context) (string, error) {
	value, err := credentials.NewSQLiteRepository(t.db).Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}
