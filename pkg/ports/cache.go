package ports

import (
	"context"

	"github.com/aretw0/chempath/pkg/domain"
)

// PathCache stores completed search outcomes so repeated queries skip the search.
type PathCache interface {
	// Get returns the outcome stored under key.
	// Returns domain.ErrCacheMiss if the key is not present or has expired.
	Get(ctx context.Context, key string) (domain.Outcome, error)

	// Put stores an outcome under key, replacing any previous value.
	Put(ctx context.Context, key string, outcome domain.Outcome) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
