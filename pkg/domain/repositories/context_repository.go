package repositories

import (
	"errors"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// ErrContextNotLoaded is returned when no pricing context snapshot is available
var ErrContextNotLoaded = errors.New("pricing context not loaded")

// ContextRepository hands out consistent pricing context snapshots.
// A snapshot returned by Snapshot must not change while a batch uses it.
type ContextRepository interface {
	Snapshot() (*entities.PricingContext, error)
	Replace(ctx *entities.PricingContext) error
}
