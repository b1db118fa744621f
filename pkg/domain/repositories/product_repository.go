package repositories

import (
	"errors"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
)

// ErrProductNotFound is returned when a SKU is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// ProductRepository provides access to the product catalog
type ProductRepository interface {
	GetProduct(sku entities.SKU) (*entities.Product, error)
	GetAllProducts() ([]*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}
