package port

import (
	"context"

	"github.com/trendloom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	// UpdateWithOutbox applies the non-nil fields of update in a single
	// atomic write, records event in the outbox within the same
	// transaction, and returns the post-update product.
	UpdateWithOutbox(ctx context.Context, id domain.ID, update domain.ProductUpdate, event domain.Event) (*domain.Product, error)
	DeleteWithOutbox(ctx context.Context, id domain.ID, event domain.Event) error
}
