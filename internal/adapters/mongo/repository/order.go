package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendloom/backoffice/internal/adapters/mongo/document"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/logger"
	"github.com/trendloom/backoffice/internal/core/port"
)

// OrderRepository is read-only here; orders are written by the storefront
// checkout service and only looked up for back-office support.
type OrderRepository struct {
	*BaseRepository[document.OrderDocument]
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) port.OrderPort {
	repo := &OrderRepository{
		BaseRepository: NewBaseRepository[document.OrderDocument](db, "orders"),
		collection:     db.Collection("orders"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "orders",
		})
	}

	return repo
}

func (r *OrderRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID domain.ID) ([]*domain.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(string(userID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	filter := bson.M{"user_id": objectID}

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(docs))
	for i, doc := range docs {
		orders[i] = doc.ToDomain()
	}

	return orders, nil
}
