package repositories

import (
	"errors"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// ErrPriceNotFound is returned when no price was published for a key
var ErrPriceNotFound = errors.New("price not published")

// PriceRepository stores the outcome of repricing runs. Implementations must be
// safe for concurrent use by repricing workers.
type PriceRepository interface {
	SavePrice(price entities.PublishedPrice) error
	GetPrice(key entities.PriceKey) (*entities.PublishedPrice, error)
	GetPricesForSKU(sku entities.SKU) ([]entities.PublishedPrice, error)
	GetAllPrices() ([]entities.PublishedPrice, error)
}
