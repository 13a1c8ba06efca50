// Package store persists website content models.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/supermodeltools/bizsite/internal/bizsite/model"
)

// ErrNotFound is returned by Get and Delete for unknown ids.
var ErrNotFound = errors.New("website not found")

// Summary is a listing row.
type Summary struct {
	ID           string
	BusinessName string
	UpdatedAt    time.Time
}

// Store saves and loads websites. Save assigns an id when missing and
// refreshes UpdatedAt.
type Store interface {
	Save(ctx context.Context, site *model.Website) (*model.Website, error)
	Get(ctx context.Context, id string) (*model.Website, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
