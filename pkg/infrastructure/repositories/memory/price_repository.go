package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/repositories"
)

// PriceRepository provides in-memory storage of published prices
type PriceRepository struct {
	mu     sync.RWMutex
	prices map[entities.PriceKey]entities.PublishedPrice
	bySKU  map[entities.SKU][]entities.PriceKey
}

// NewPriceRepository creates a new in-memory price repository
func NewPriceRepository() *PriceRepository {
	return &PriceRepository{
		prices: make(map[entities.PriceKey]entities.PublishedPrice),
		bySKU:  make(map[entities.SKU][]entities.PriceKey),
	}
}

// Verify interface compliance
var _ repositories.PriceRepository = (*PriceRepository)(nil)

// SavePrice stores a published price, replacing any earlier one with the same key
func (r *PriceRepository) SavePrice(price entities.PublishedPrice) error {
	if price.SKU == "" {
		return fmt.Errorf("published price has no sku")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := price.Key()
	if _, exists := r.prices[key]; !exists {
		r.bySKU[price.SKU] = append(r.bySKU[price.SKU], key)
	}
	r.prices[key] = price
	return nil
}

// GetPrice returns the published price for a key
func (r *PriceRepository) GetPrice(key entities.PriceKey) (*entities.PublishedPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	price, exists := r.prices[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s/%s", repositories.ErrPriceNotFound, key.SKU, key.Channel)
	}
	return &price, nil
}

// GetPricesForSKU returns every published price of a SKU in save order
func (r *PriceRepository) GetPricesForSKU(sku entities.SKU) ([]entities.PublishedPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := r.bySKU[sku]
	prices := make([]entities.PublishedPrice, 0, len(keys))
	for _, key := range keys {
		prices = append(prices, r.prices[key])
	}
	return prices, nil
}

// GetAllPrices returns all published prices sorted by SKU, channel and role
func (r *PriceRepository) GetAllPrices() ([]entities.PublishedPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prices := make([]entities.PublishedPrice, 0, len(r.prices))
	for _, price := range r.prices {
		prices = append(prices, price)
	}
	sort.Slice(prices, func(i, j int) bool {
		a, b := prices[i], prices[j]
		if a.SKU != b.SKU {
			return a.SKU < b.SKU
		}
		if a.Channel != b.Channel {
			return a.Channel < b.Channel
		}
		return a.Role < b.Role
	})
	return prices, nil
}
