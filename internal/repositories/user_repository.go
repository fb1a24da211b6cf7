package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// MongoUserRepository stores users in the document database.
type MongoUserRepository struct {
	conn *mongodb.Lazy
}

func NewMongoUserRepository(conn *mongodb.Lazy) *MongoUserRepository {
	return &MongoUserRepository{conn: conn}
}

func (r *MongoUserRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := r.conn.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error connecting to user store: %w", err)
	}
	return client.Collection(usersCollection), nil
}

// EnsureIndexes creates the unique index on Email.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "Email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("error creating email index: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email address
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = coll.FindOne(ctx, bson.M{"Email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, WrapNotFound(err, ErrUserNotFound)
		}
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by its hex ObjectID
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return nil, fmt.Errorf("%w: invalid id %q", ErrUserNotFound, id)
	}

	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, WrapNotFound(err, ErrUserNotFound)
		}
		return nil, fmt.Errorf("error finding user by id: %w", err)
	}

	return &user, nil
}

// Create inserts a new user document. The password must already be hashed.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	result, err := coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with email %s: %w", user.Email, ErrEmailExists)
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}
