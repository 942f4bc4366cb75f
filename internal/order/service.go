package order

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microshop/services/internal/auditlog"
	"github.com/microshop/services/internal/events"
	"github.com/microshop/services/internal/pkg/upstream"
)

// ServiceDeps bundles the collaborators a Service needs. Users and Products
// are required; the rest is optional.
type ServiceDeps struct {
	Users    UserDirectory
	Products ProductCatalog

	// Store defaults to a fresh empty store when nil.
	Store *Store

	// Audit, when set, receives one entry per created order.
	Audit auditlog.Repository

	// Events, when set, receives one OrderCreated event per created order.
	Events events.Publisher

	// Clock defaults to time.Now. Injected for tests.
	Clock func() time.Time
}

// Service is the order orchestrator.
type Service struct {
	users    UserDirectory
	products ProductCatalog
	store    *Store
	audit    auditlog.Repository
	events   events.Publisher
	clock    func() time.Time
}

// NewService validates deps and returns a ready Service.
func NewService(deps ServiceDeps) (*Service, error) {
	if deps.Users == nil {
		return nil, errors.New("order: user directory is required")
	}
	if deps.Products == nil {
		return nil, errors.New("order: product catalog is required")
	}
	if deps.Store == nil {
		deps.Store = NewStore()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Service{
		users:    deps.Users,
		products: deps.Products,
		store:    deps.Store,
		audit:    deps.Audit,
		events:   deps.Events,
		clock:    deps.Clock,
	}, nil
}

// CreateOrder validates the user and every line item against the owning
// services, snapshots product name and price, computes the total, and
// commits the assembled order. The order ID is allocated only after all
// validations succeed, so failed creations consume no ID. Remote calls run
// before the store lock is taken; slow upstreams never block readers.
func (s *Service) CreateOrder(ctx context.Context, userID string, items []LineItem) (Order, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return Order{}, status.Errorf(codes.InvalidArgument,
			"user with ID %s not found: %s", userID, upstream.Detail(err))
	}

	details := make([]ItemDetail, 0, len(items))
	var total float64
	for _, item := range items {
		p, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return Order{}, status.Errorf(codes.InvalidArgument,
				"product with ID %s not found: %s", item.ProductID, upstream.Detail(err))
		}

		subtotal := p.Price * float64(item.Quantity)
		details = append(details, ItemDetail{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
		})
		total += subtotal
	}

	o := s.store.Add(Order{
		UserID:      userID,
		Items:       details,
		TotalAmount: total,
		Status:      StatusCreated,
		CreatedAt:   s.clock().UTC().Format(time.RFC3339),
	})

	s.recordAudit(ctx, o)
	s.publishCreated(ctx, o)

	slog.InfoContext(ctx, "order created",
		"order_id", o.ID, "user_id", userID, "items", len(details), "total", total)
	return o, nil
}

// GetOrder returns a stored order. No remote calls.
func (s *Service) GetOrder(ctx context.Context, id int64) (Order, error) {
	o, ok := s.store.Get(id)
	if !ok {
		return Order{}, status.Errorf(codes.NotFound, "order with ID %d not found", id)
	}
	return o, nil
}

// GetUserOrders validates the user and returns their orders sorted by ID.
// A valid user with no orders gets an empty list, not an error.
func (s *Service) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, status.Errorf(codes.InvalidArgument,
			"user with ID %s not found: %s", userID, upstream.Detail(err))
	}
	return s.store.ListByUser(userID), nil
}

// recordAudit appends an audit entry. Trail failures are logged, never
// surfaced: the order is already committed.
func (s *Service) recordAudit(ctx context.Context, o Order) {
	if s.audit == nil {
		return
	}
	traceInfo := auditlog.ExtractTraceInfo(ctx)
	entry := &auditlog.Entry{
		OrderID:     o.ID,
		UserID:      o.UserID,
		Event:       auditlog.EventOrderCreated,
		TotalAmount: o.TotalAmount,
		TraceID:     traceInfo.TraceID,
		SpanID:      traceInfo.SpanID,
		CreatedAt:   s.clock().UTC(),
	}
	if err := s.audit.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "audit entry write failed", "order_id", o.ID, "error", err)
	}
}

// publishCreated emits the OrderCreated event. Publish failures are logged,
// never surfaced.
func (s *Service) publishCreated(ctx context.Context, o Order) {
	if s.events == nil {
		return
	}
	items := make([]events.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, events.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.ProductPrice,
		})
	}
	event := events.NewOrderCreated(o.ID, o.UserID, items, o.TotalAmount, string(o.Status), o.CreatedAt)
	if err := s.events.PublishOrderCreated(ctx, event); err != nil {
		slog.ErrorContext(ctx, "order created event publish failed", "order_id", o.ID, "error", err)
	}
}
