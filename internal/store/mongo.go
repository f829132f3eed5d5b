package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kidswear-backend/internal/config"
)

// Collection names. Collections are created lazily by the driver, but
// EnsureCollections makes them explicit once at startup.
const (
	CollectionUser    = "user"
	CollectionProduct = "product"
	CollectionOrder   = "order"
)

// ErrNotConfigured is returned by services when the process started
// without DATABASE_URL / DATABASE_NAME.
var ErrNotConfigured = errors.New("store: database not configured")

// Mongo owns the database handle. It is created once at startup and
// passed to services explicitly; services only see the narrow CRUD
// surface below.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("Connected to MongoDB")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) {
	if m == nil || m.client == nil {
		return
	}
	if err := m.client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		return
	}
	log.Info().Msg("Database connection closed")
}

// InsertOne stores a single document and returns its assigned id.
func (m *Mongo) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T in %s", res.InsertedID, collection)
	}
	return id, nil
}

// FindMany returns up to limit documents matching filter, in natural
// storage order.
func (m *Mongo) FindMany(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	cursor, err := m.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return docs, nil
}

// FindOne returns the document with the given id, or nil when no
// document matches.
func (m *Mongo) FindOne(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", collection, err)
	}
	return doc, nil
}

func (m *Mongo) Count(ctx context.Context, collection string) (int64, error) {
	count, err := m.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", collection, err)
	}
	return count, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

// EnsureCollections creates the well-known collections if they do not
// exist yet. Safe to call on every startup.
func (m *Mongo) EnsureCollections(ctx context.Context) error {
	existing, err := m.CollectionNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, name := range []string{CollectionUser, CollectionProduct, CollectionOrder} {
		if slices.Contains(existing, name) {
			continue
		}
		if err := m.db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
		log.Info().Str("collection", name).Msg("Created collection")
	}
	return nil
}
