// Package config loads per-service runtime configuration from the
// environment. Every field has a default suitable for running the full stack
// locally; optional integrations (Redis, RabbitMQ, the audit database) stay
// disabled until their variable is set.
package config

import "os"

// OrderService configures the order orchestrator process.
type OrderService struct {
	Addr              string
	ServiceName       string
	UserServiceURL    string
	ProductServiceURL string

	// RedisAddr enables idempotent order creation when set.
	RedisAddr string
	// AMQPURL enables OrderCreated event publishing when set.
	AMQPURL string
	// AuditDBPath enables the SQLite audit trail when set.
	AuditDBPath string
}

// UserService configures the user directory process.
type UserService struct {
	Addr        string
	ServiceName string
}

// ProductService configures the product catalog process.
type ProductService struct {
	Addr        string
	ServiceName string
}

// LoadOrder reads the order service configuration from the environment.
func LoadOrder() OrderService {
	return OrderService{
		Addr:              ":" + getEnv("PORT", "8080"),
		ServiceName:       getEnv("OTEL_SERVICE_NAME", "order-service"),
		UserServiceURL:    getEnv("USER_SERVICE_URL", "http://localhost:8081"),
		ProductServiceURL: getEnv("PRODUCT_SERVICE_URL", "http://localhost:8082"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		AMQPURL:           os.Getenv("AMQP_URL"),
		AuditDBPath:       os.Getenv("AUDIT_DB_PATH"),
	}
}

// LoadUser reads the user service configuration from the environment.
func LoadUser() UserService {
	return UserService{
		Addr:        ":" + getEnv("PORT", "8081"),
		ServiceName: getEnv("OTEL_SERVICE_NAME", "user-service"),
	}
}

// LoadProduct reads the product service configuration from the environment.
func LoadProduct() ProductService {
	return ProductService{
		Addr:        ":" + getEnv("PORT", "8082"),
		ServiceName: getEnv("OTEL_SERVICE_NAME", "product-service"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
