// Package credentials persists opaque client credentials across process
// restarts. An absent value is a normal state, not an error.
package credentials

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
