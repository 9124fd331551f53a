// Package store defines the backing-store contract shared by the Google
// Sheets, relational and in-memory implementations.
package store

import (
	"context"
	"errors"
)

// ErrTabNotFound distinguishes a missing named tab/table from other store
// failures; readers degrade to an empty collection instead of failing.
var ErrTabNotFound = errors.New("store: tab not found")

// Store is the narrow contract over a tabbed row store.
//
// Read returns every data row of a tab keyed by its header row. Append adds
// fixed-order value rows at the end. Delete removes the row at a 1-based
// position, where the header row occupies position 1 and the first data row
// position 2.
type Store interface {
	Read(ctx context.Context, tab string) ([]map[string]string, error)
	Append(ctx context.Context, tab string, rows [][]string) error
	Delete(ctx context.Context, tab string, pos int) error
}
