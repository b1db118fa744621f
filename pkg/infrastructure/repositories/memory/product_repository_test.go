package memory

import (
	"errors"
	"testing"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/repositories"
)

func TestProductRepository_AddAndGet(t *testing.T) {
	repo := NewProductRepository(10)

	product := &entities.Product{
		SKU:         "SERUM-30",
		Description: "Hyaluronic Serum 30ml",
		Line:        "skincare",
		ContentML:   30,
		UnitPricing: entities.PerLiter,
	}

	if err := repo.LoadProducts([]*entities.Product{product}); err != nil {
		t.Fatalf("Failed to load products: %v", err)
	}

	retrieved, err := repo.GetProduct("SERUM-30")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}

	if retrieved.Description != product.Description {
		t.Errorf("Expected description %s, got %s", product.Description, retrieved.Description)
	}

	if retrieved.UnitPricing != entities.PerLiter {
		t.Errorf("Expected unit pricing %s, got %s", entities.PerLiter, retrieved.UnitPricing)
	}
}

func TestProductRepository_DuplicateReplaces(t *testing.T) {
	repo := NewProductRepository(2)

	repo.AddProduct(entities.Product{SKU: "CREAM-50", Description: "First"})
	repo.AddProduct(entities.Product{SKU: "CREAM-50", Description: "Second"})

	if repo.Count() != 1 {
		t.Fatalf("Expected 1 product, got %d", repo.Count())
	}

	retrieved, err := repo.GetProduct("CREAM-50")
	if err != nil {
		t.Fatalf("Failed to get product: %v", err)
	}
	if retrieved.Description != "Second" {
		t.Errorf("Expected replaced description, got %s", retrieved.Description)
	}
}

func TestProductRepository_NotFound(t *testing.T) {
	repo := NewProductRepository(0)

	_, err := repo.GetProduct("MISSING")
	if err == nil {
		t.Fatal("Expected error for missing product")
	}
	if !errors.Is(err, repositories.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	repo := NewProductRepository(1)
	repo.AddProduct(entities.Product{SKU: "TONER-200", Description: "Toner"})

	first, _ := repo.GetProduct("TONER-200")
	first.Description = "mutated"

	second, _ := repo.GetProduct("TONER-200")
	if second.Description != "Toner" {
		t.Errorf("Expected stored product to be unaffected, got %s", second.Description)
	}
}

func TestProductRepository_GetAllProductsKeepsOrder(t *testing.T) {
	repo := NewProductRepository(3)
	for _, sku := range []entities.SKU{"C", "A", "B"} {
		repo.AddProduct(entities.Product{SKU: sku})
	}

	products, err := repo.GetAllProducts()
	if err != nil {
		t.Fatalf("Failed to get products: %v", err)
	}

	expected := []entities.SKU{"C", "A", "B"}
	for i, product := range products {
		if product.SKU != expected[i] {
			t.Errorf("Expected SKU %s at %d, got %s", expected[i], i, product.SKU)
		}
	}
}

func TestProductRepository_LoadNil(t *testing.T) {
	repo := NewProductRepository(1)
	if err := repo.LoadProducts([]*entities.Product{nil}); err == nil {
		t.Error("Expected error loading nil product")
	}
}
