package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edunexus/edunexus-backend/internal/config"
)

// Collection names
const (
	UsersCollection   = "users"
	CoursesCollection = "courses"
)

// MongoDB database connection structure
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB creates a new MongoDB client and verifies connectivity
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	connectTimeout, err := time.ParseDuration(cfg.MongoDB.ConnectTimeout)
	if err != nil {
		connectTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.MongoDB.URI).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.MongoDB.Database),
	}, nil
}

// EnsureIndexes creates the indexes the application relies on.
// Email uniqueness is enforced here, before any insert can race.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	users := db.Database.Collection(UsersCollection)

	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	courses := db.Database.Collection(CoursesCollection)

	_, err = courses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "adminId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create course adminId index: %w", err)
	}

	return nil
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
