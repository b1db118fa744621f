package memory

import (
	"fmt"
	"sync"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/repositories"
)

// ProductRepository provides in-memory product catalog storage
type ProductRepository struct {
	mu          sync.RWMutex
	products    []entities.Product
	productsMap map[entities.SKU]int
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products:    make([]entities.Product, 0, expectedProducts),
		productsMap: make(map[entities.SKU]int, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		if product == nil {
			return fmt.Errorf("cannot load nil product")
		}
		r.AddProduct(*product)
	}
	return nil
}

// AddProduct adds a product to the repository. A second product with the
// same SKU replaces the first in place.
func (r *ProductRepository) AddProduct(product entities.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index, exists := r.productsMap[product.SKU]; exists {
		r.products[index] = product
		return
	}
	r.productsMap[product.SKU] = len(r.products)
	r.products = append(r.products, product)
}

// GetProduct returns the product with the given SKU
func (r *ProductRepository) GetProduct(sku entities.SKU) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, exists := r.productsMap[sku]
	if !exists {
		return nil, fmt.Errorf("%w: %s", repositories.ErrProductNotFound, sku)
	}
	product := r.products[index]
	return &product, nil
}

// GetAllProducts returns all products in load order
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entities.Product, 0, len(r.products))
	for i := range r.products {
		product := r.products[i]
		products = append(products, &product)
	}
	return products, nil
}

// Count returns the number of products in the catalog
func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
