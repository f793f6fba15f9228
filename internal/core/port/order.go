package port

import (
	"context"

	"github.com/trendloom/backoffice/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OrderPort interface {
	GetByUserID(ctx context.Context, userID domain.ID) ([]*domain.Order, error)
}
