package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	c "github.com/fjod/go_store/sales-service/internal/cache"
	"github.com/fjod/go_store/sales-service/internal/dispatch"
	"github.com/fjod/go_store/sales-service/internal/domain"
	"github.com/fjod/go_store/sales-service/internal/pricing"
	"github.com/fjod/go_store/sales-service/internal/repository"
	"github.com/fjod/go_store/sales-service/internal/salenumber"
	s "github.com/fjod/go_store/sales-service/internal/service"
	"github.com/fjod/go_store/sales-service/internal/store"
)

func main() {
	ctx := context.Background()

	// Price cache: redis when configured, otherwise a no-op cache
	var priceCache c.PriceCache = c.NoopCache{}
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		priceCache = c.NewRedisCache(redisClient)
	}

	catalog := store.NewMemoryStore()
	seedCatalog(catalog)
	log.Printf("Seeded catalog with %d products", catalog.Len())

	prices := pricing.NewPriceService(catalog, priceCache)
	sales := repository.NewMemorySaleRepository()
	carts := repository.NewMemoryCartRepository()
	service := s.NewSalesService(sales, carts, prices, salenumber.NewDateRandom(), dispatch.LogDispatcher{})

	if os.Getenv("DEMO") == "1" {
		if err := runDemo(ctx, service); err != nil {
			log.Fatalf("Demo flow failed: %v", err)
		}
		log.Println("Demo flow finished")
	}

	log.Println("Sales service is up")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down sales service...")
}

// runDemo walks one cart through the full lifecycle: create, reconcile,
// checkout, modify, complete.
func runDemo(ctx context.Context, service *s.SalesService) error {
	keyboard := domain.CartItem{ProductID: "p-100", ProductName: "Keyboard", Quantity: 2}
	monitor := domain.CartItem{ProductID: "p-200", ProductName: "Monitor", Quantity: 5}

	cart, err := service.CreateCart(ctx, "u-1", "Ana Souza", []*domain.CartItem{&keyboard, &monitor})
	if err != nil {
		return err
	}
	log.Printf("Created cart %s with %d items", cart.ID, len(cart.Items))

	monitor.Quantity = 4
	cart, err = service.UpdateCart(ctx, cart.ID, "", "", []*domain.CartItem{&keyboard, &monitor})
	if err != nil {
		return err
	}

	sale, err := service.Checkout(ctx, cart.ID, "branch-sp-01")
	if err != nil {
		return err
	}
	total, err := sale.TotalAmount()
	if err != nil {
		return err
	}
	log.Printf("Created sale %s, total %s", sale.SaleNumber, total)

	if _, err := service.AddItem(ctx, sale.ID, "p-300", 10, "ana@store.example"); err != nil {
		return err
	}
	if _, err := service.RemoveItem(ctx, sale.ID, "p-100", "ana@store.example"); err != nil {
		return err
	}
	sale, err = service.Complete(ctx, sale.ID, "ana@store.example")
	if err != nil {
		return err
	}
	log.Printf("Sale %s is %s", sale.SaleNumber, sale.Status)
	return nil
}

func seedCatalog(catalog *store.MemoryStore) {
	entries := []struct {
		id, name, price string
	}{
		{"p-100", "Keyboard", "150"},
		{"p-200", "Monitor", "1200"},
		{"p-300", "Mouse", "89.90"},
	}
	for _, e := range entries {
		product, err := domain.NewProduct(e.id, e.name, domain.NewMoney(decimal.RequireFromString(e.price), "BRL"))
		if err != nil {
			log.Fatalf("Seed product %s failed: %v", e.id, err)
		}
		catalog.Put(*product)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
