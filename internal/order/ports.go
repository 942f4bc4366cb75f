package order

import (
	"context"

	"github.com/microshop/services/internal/catalog"
	"github.com/microshop/services/internal/user"
)

// UserDirectory is the consumed interface of the user service. Any error is
// treated as a failed user validation; implementations tag it with
// codes.NotFound or codes.Unavailable so callers can still tell them apart.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (user.User, error)
}

// ProductCatalog is the consumed interface of the product service.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (catalog.Product, error)
}
