package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/stac-tools/stac-fetch/catalog"
	"github.com/stac-tools/stac-fetch/config"
)

const connectTimeout = 5 * time.Second

// Mongo is a catalog document store backed by mongo or docdb. Node
// documents are kept as raw JSON keyed by their self href, so reloading a
// catalog reproduces exactly what was written.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
	uri        string
}

type nodeDocument struct {
	ID   string `bson:"_id"`
	Body string `bson:"body"`
}

// New connects to the configured mongo instance and returns a store.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	uri := fmt.Sprintf("mongodb://%s", cfg.MongoConfig.BindAddr)

	opts := options.Client().ApplyURI(uri).SetConnectTimeout(connectTimeout)
	if cfg.MongoConfig.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.MongoConfig.Username,
			Password: cfg.MongoConfig.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Mongo{
		client:     client,
		collection: client.Database(cfg.MongoConfig.Database).Collection(cfg.MongoConfig.Collection),
		uri:        uri,
	}, nil
}

// Put upserts the document under key.
func (m *Mongo) Put(ctx context.Context, key string, document any) error {
	b, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}

	_, err = m.collection.ReplaceOne(ctx,
		bson.M{"_id": key},
		nodeDocument{ID: key, Body: string(b)},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Get reads the document stored under key into document.
func (m *Mongo) Get(ctx context.Context, key string, document any) error {
	var node nodeDocument
	if err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&node); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("document %q: %w", key, catalog.ErrNotFound)
		}
		return err
	}
	return json.Unmarshal([]byte(node.Body), document)
}

// URI returns the connection address.
func (m *Mongo) URI() string {
	return m.uri
}

// Close disconnects within the context deadline.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Checker is called by the healthcheck library to check the health state
// of this mongo instance.
func (m *Mongo) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	return state.Update(healthcheck.StatusOK, "mongo is reachable", 0)
}
