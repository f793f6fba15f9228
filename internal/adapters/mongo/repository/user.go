package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trendloom/backoffice/internal/adapters/mongo/document"
	"github.com/trendloom/backoffice/internal/adapters/outbox"
	"github.com/trendloom/backoffice/internal/core/domain"
	"github.com/trendloom/backoffice/internal/core/logger"
	"github.com/trendloom/backoffice/internal/core/port"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

type UserRepository struct {
	*BaseRepository[document.UserDocument]
	db         *mongo.Database
	collection *mongo.Collection
	outbox     outbox.Repository
}

func NewUserRepository(db *mongo.Database, outbox outbox.Repository) port.UserPort {
	repo := &UserRepository{
		BaseRepository: NewBaseRepository[document.UserDocument](db, "users"),
		db:             db,
		collection:     db.Collection("users"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "users",
		})
	}

	return repo
}

func (r *UserRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID != "" {
		return errors.New("cannot create user with existing ID")
	}

	doc := document.ToUserDocument(user)
	doc.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return serviceerrors.NewConflictError("user already exists")
		}
		return parseError(err)
	}

	user.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("user not found")
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	doc, err := r.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("user not found")
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, len(docs))
	for i, doc := range docs {
		users[i] = doc.ToDomain()
	}

	return users, nil
}

func (r *UserRepository) SetBlockedWithOutbox(ctx context.Context, id domain.ID, blocked bool, event domain.Event) error {
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
		result, err := r.collection.UpdateOne(sessCtx,
			bson.M{"_id": objectID},
			bson.M{"$set": bson.M{"is_blocked": blocked}},
		)
		if err != nil {
			return nil, parseError(err)
		}
		if result.MatchedCount == 0 {
			return nil, serviceerrors.NewNotFoundError("user not found")
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
