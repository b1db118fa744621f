package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/vsinha/pricinglaw/pkg/domain/entities"
	"github.com/vsinha/pricinglaw/pkg/domain/repositories"
)

func TestPriceRepository_SaveAndGet(t *testing.T) {
	repo := NewPriceRepository()

	price := entities.PublishedPrice{RunID: "run-1", SKU: "SERUM-30", Channel: "shop", Price: 27.99, NetPrice: 27.99}
	if err := repo.SavePrice(price); err != nil {
		t.Fatalf("Failed to save price: %v", err)
	}

	retrieved, err := repo.GetPrice(entities.PriceKey{SKU: "SERUM-30", Channel: "shop"})
	if err != nil {
		t.Fatalf("Failed to get price: %v", err)
	}
	if retrieved.Price != 27.99 {
		t.Errorf("Expected price 27.99, got %.2f", retrieved.Price)
	}

	_, err = repo.GetPrice(entities.PriceKey{SKU: "SERUM-30", Channel: "amazon_fba"})
	if !errors.Is(err, repositories.ErrPriceNotFound) {
		t.Errorf("Expected ErrPriceNotFound, got %v", err)
	}
}

func TestPriceRepository_LaterRunReplaces(t *testing.T) {
	repo := NewPriceRepository()

	_ = repo.SavePrice(entities.PublishedPrice{RunID: "run-1", SKU: "SERUM-30", Channel: "shop", Price: 27.99})
	_ = repo.SavePrice(entities.PublishedPrice{RunID: "run-2", SKU: "SERUM-30", Channel: "shop", Price: 29.99})

	prices, _ := repo.GetPricesForSKU("SERUM-30")
	if len(prices) != 1 {
		t.Fatalf("Expected 1 price, got %d", len(prices))
	}
	if prices[0].RunID != "run-2" || prices[0].Price != 29.99 {
		t.Errorf("Expected run-2 price 29.99, got %s %.2f", prices[0].RunID, prices[0].Price)
	}
}

func TestPriceRepository_RejectsEmptySKU(t *testing.T) {
	repo := NewPriceRepository()
	if err := repo.SavePrice(entities.PublishedPrice{Channel: "shop"}); err == nil {
		t.Error("Expected error for price without sku")
	}
}

func TestPriceRepository_ConcurrentSaves(t *testing.T) {
	repo := NewPriceRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.SavePrice(entities.PublishedPrice{
				SKU:     entities.SKU(fmt.Sprintf("SKU-%02d", i%10)),
				Channel: entities.ChannelID(fmt.Sprintf("ch-%d", i/10)),
				Price:   float64(i),
			})
		}(i)
	}
	wg.Wait()

	prices, _ := repo.GetAllPrices()
	if len(prices) != 50 {
		t.Fatalf("Expected 50 prices, got %d", len(prices))
	}
	if prices[0].SKU != "SKU-00" || prices[0].Channel != "ch-0" {
		t.Errorf("Expected sorted output to start with SKU-00/ch-0, got %s/%s", prices[0].SKU, prices[0].Channel)
	}
}
