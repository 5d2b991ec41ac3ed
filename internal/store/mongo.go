package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDatabase is the networked [Database] implementation backed by a
// MongoDB deployment. Concurrency and ordering guarantees are whatever the
// external store provides; this layer does not strengthen them.
type MongoDatabase struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo establishes the MongoDB connection and runs a liveness
// probe bounded by cfg.ConnectTimeout. The probe failing is how the process
// learns it must fall back to the in-memory store, so the error is returned,
// not fatal.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDatabase, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during document store connection")
		return nil, fmt.Errorf("error occured during document store connection: %w", err)
	}

	// force server selection to fail early if unreachable
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting document store (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to document store successfully")

	return &MongoDatabase{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

// Collection returns the named collection wrapped in the [Collection]
// contract.
func (db *MongoDatabase) Collection(name string) Collection {
	return &mongoCollection{collection: db.database.Collection(name)}
}

// EnsureIndexes creates the declared indexes: the unique user_email index on
// users and the user_id lookup index on notes. Failure here degrades
// constraint enforcement but must not prevent startup; the caller logs and
// continues.
func (db *MongoDatabase) EnsureIndexes(ctx context.Context) error {
	_, err := db.database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating unique user_email index: %w", err)
	}

	_, err = db.database.Collection("notes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating notes user_id index: %w", err)
	}

	return nil
}

// Disconnect closes the underlying client connection.
func (db *MongoDatabase) Disconnect(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// mongoCollection adapts a *mongo.Collection to the [Collection] contract,
// classifying driver errors into the package sentinels.
type mongoCollection struct {
	collection *mongo.Collection
}

func (c *mongoCollection) FindOne(ctx context.Context, filter Filter, dest any) error {
	err := c.collection.FindOne(ctx, bson.M(filter)).Decode(dest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (c *mongoCollection) Find(ctx context.Context, filter Filter, opts *FindOptions, dest any) error {
	findOpts := options.Find()
	if opts != nil && opts.SortField != "" {
		direction := 1
		if opts.SortDesc {
			direction = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: direction}})
	}

	cursor, err := c.collection.Find(ctx, bson.M(filter), findOpts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) error {
	_, err := c.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter Filter, set Fields) (int64, error) {
	result, err := c.collection.UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(set)})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return result.ModifiedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	result, err := c.collection.DeleteOne(ctx, bson.M(filter))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return result.DeletedCount, nil
}
