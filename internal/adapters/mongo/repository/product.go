package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendloom/backoffice/internal/adapters/mongo/document"
	"github.com/trendloom/backoffice/internal/adapters/outbox"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/port"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewProductRepository(db *mongo.Database, outbox outbox.Repository) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		db:             db,
		collection:     db.Collection("products"),
		outbox:         outbox,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("product not found")
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

// setDocument maps only the populated update fields, so absent form fields
// never overwrite stored values.
func setDocument(update domain.ProductUpdate) bson.M {
	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.SubCategory != nil {
		set["sub_category"] = *update.SubCategory
	}
	if update.Price != nil {
		set["price"] = int64(*update.Price)
	}
	if update.HasSizes {
		set["sizes"] = update.Sizes
	}
	if update.Bestseller != nil {
		set["bestseller"] = *update.Bestseller
	}
	if update.Image != nil {
		set["image"] = update.Image
	}
	return set
}

// UpdateWithOutbox applies the partial update and stores the event in the
// same transaction, returning the document as persisted.
func (r *ProductRepository) UpdateWithOutbox(ctx context.Context, id domain.ID, update domain.ProductUpdate, event domain.Event) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, parseError(err)
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	var updated document.ProductDocument
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := r.collection.FindOneAndUpdate(sessCtx,
			bson.M{"_id": objectID},
			bson.M{"$set": setDocument(update)},
			opts,
		).Decode(&updated)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, serviceerrors.NewNotFoundError("product not found")
			}
			return nil, parseError(err)
		}

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := r.outbox.Insert(sessCtx, entry); err != nil {
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return updated.ToDomain(), nil
}

func (r *ProductRepository) DeleteWithOutbox(ctx context.Context, id domain.ID, event domain.Event) error {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return parseError(err)
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := r.collection.DeleteOne(sessCtx, bson.M{"_id": objectID})
		if err != nil {
			return nil, parseError(err)
		}
		if result.DeletedCount == 0 {
			return nil, serviceerrors.NewNotFoundError("product not found")
		}

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := r.outbox.Insert(sessCtx, entry); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}
