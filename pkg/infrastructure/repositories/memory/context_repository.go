package memory

import (
	"errors"
	"sync/atomic"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/repositories"
)

// ContextRepository holds the current pricing context snapshot.
// Replace swaps the whole snapshot so batches already holding one keep
// a consistent view.
type ContextRepository struct {
	current atomic.Pointer[entities.PricingContext]
}

// NewContextRepository creates a repository, optionally seeded with a snapshot
func NewContextRepository(initial *entities.PricingContext) *ContextRepository {
	r := &ContextRepository{}
	if initial != nil {
		r.current.Store(initial)
	}
	return r
}

// Verify interface compliance
var _ repositories.ContextRepository = (*ContextRepository)(nil)

// Snapshot returns the current context
func (r *ContextRepository) Snapshot() (*entities.PricingContext, error) {
	ctx := r.current.Load()
	if ctx == nil {
		return nil, repositories.ErrContextNotLoaded
	}
	return ctx, nil
}

// Replace installs a new context snapshot
func (r *ContextRepository) Replace(ctx *entities.PricingContext) error {
	if ctx == nil {
		return errors.New("cannot replace pricing context with nil")
	}
	r.current.Store(ctx)
	return nil
}
