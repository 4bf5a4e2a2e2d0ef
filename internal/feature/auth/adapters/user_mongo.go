// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"member_portal/internal/feature/auth/domain/entity"
	"member_portal/internal/feature/auth/usecase"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userModel is the BSON document stored in the users collection.
type userModel struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Username  string        `bson:"username"`
	Password  string        `bson:"password"`
	Address   string        `bson:"address"`
	Location  string        `bson:"location"`
	CreatedAt time.Time     `bson:"created_at"`
}

// toEntity converts the stored document to a domain entity.
func (m *userModel) toEntity() *entity.User {
	return &entity.User{
		ID:        m.ID.Hex(),
		Username:  m.Username,
		Password:  m.Password,
		Address:   m.Address,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
	}
}

// userMongo is a MongoDB implementation of the UserRepository interface.
type userMongo struct {
	col *mongo.Collection
}

// Compile-time check to ensure userMongo implements UserRepository.
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo creates a new userMongo backed by the "users" collection of
// the given database.
func NewUserMongo(db *mongo.Database) *userMongo {
	return &userMongo{col: db.Collection("users")}
}

// EnsureIndexes creates the unique index on username. Create relies on this
// index to reject duplicates, so it must run before the store is used.
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts the user and assigns its store-generated ID.
// Returns usecase.ErrUsernameTaken when the username is already in use;
// concurrent duplicate signups are serialized by the unique index.
func (r *userMongo) Create(ctx context.Context, u *entity.User) error {
	model := &userModel{
		Username:  u.Username,
		Password:  u.Password,
		Address:   u.Address,
		Location:  u.Location,
		CreatedAt: time.Now(),
	}
	res, err := r.col.InsertOne(ctx, model)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = id.Hex()
	}
	u.CreatedAt = model.CreatedAt
	return nil
}

// FindByUsername retrieves a user by username.
// Returns usecase.ErrUserNotFound if no such user exists.
func (r *userMongo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var model userModel
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return model.toEntity(), nil
}

// FindByID retrieves a user by its ObjectID hex string. A malformed ID is
// reported as not found, the same as a dangling session reference.
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrUserNotFound
	}
	var model userModel
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&model); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return model.toEntity(), nil
}
