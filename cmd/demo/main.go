// Command demo walks the full order flow against a locally running stack:
// create a user, create two products, compose an order from them, then read
// the order back by ID and by user.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/microshop/services/internal/catalog"
	"github.com/microshop/services/internal/order"
	"github.com/microshop/services/internal/user"
)

func main() {
	userURL := getEnv("USER_SERVICE_URL", "http://localhost:8081")
	productURL := getEnv("PRODUCT_SERVICE_URL", "http://localhost:8082")
	orderURL := getEnv("ORDER_SERVICE_URL", "http://localhost:8080")

	users := user.NewClient(userURL)
	products := catalog.NewClient(productURL)
	orders := order.NewClient(orderURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	u, err := users.CreateUser(ctx, "Bob Johnson", "bob@example.com")
	if err != nil {
		log.Fatalf("could not create user: %v", err)
	}
	log.Printf("created user: %+v", u)

	tablet, err := products.CreateProduct(ctx, "Tablet", "10-inch tablet", 349.99)
	if err != nil {
		log.Fatalf("could not create product: %v", err)
	}
	log.Printf("created product: %+v", tablet)

	keyboard, err := products.CreateProduct(ctx, "Keyboard", "Mechanical keyboard", 79.99)
	if err != nil {
		log.Fatalf("could not create product: %v", err)
	}
	log.Printf("created product: %+v", keyboard)

	o, err := orders.CreateOrder(ctx, u.ID, []order.LineItem{
		{ProductID: tablet.ID, Quantity: 1},
		{ProductID: keyboard.ID, Quantity: 2},
	})
	if err != nil {
		log.Fatalf("could not create order: %v", err)
	}
	log.Printf("created order %d: total %.2f status %s", o.ID, o.TotalAmount, o.Status)

	fetched, err := orders.GetOrder(ctx, o.ID)
	if err != nil {
		log.Fatalf("could not fetch order: %v", err)
	}
	log.Printf("fetched order %d with %d items", fetched.ID, len(fetched.Items))

	all, err := orders.GetUserOrders(ctx, u.ID)
	if err != nil {
		log.Fatalf("could not list orders: %v", err)
	}
	log.Printf("user %s has %d order(s)", u.ID, len(all))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
