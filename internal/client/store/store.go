// Package store implements the persisted local state of the client: a small
// key/value table in a sqlite database holding exactly one opaque access
// token and one cached profile. The session manager is the single writer;
// every other component only reads through the Token view.
package store

import "context"

// Keys of the two values the client persists.
const (
	KeyToken   = "token"
	KeyProfile = "profile"
)

// Store is the persisted key/value state shared by client components.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
