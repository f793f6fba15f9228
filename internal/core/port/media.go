package port

import (
	"context"
	"io"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// MediaStorePort uploads a binary object to a durable media host and
// returns its public URL.
type MediaStorePort interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}
