package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobportal/portal/internal/core/domain"
)

const (
	defaultTimeout  = 10 * time.Second
	stateCollection = "client_state"
)

// Config captures the settings required to reach the token collection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type tokenDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// TokenStore keeps the token as one document of the client_state collection.
type TokenStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open establishes a MongoDB client, verifies connectivity with a ping and
// returns a store on cfg.Database. A default timeout is applied when none is
// provided.
func Open(ctx context.Context, cfg Config) (*TokenStore, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return NewTokenStore(client.Database(cfg.Database)), nil
}

// NewTokenStore wraps an existing database handle.
func NewTokenStore(db *mongo.Database) *TokenStore {
	return &TokenStore{client: db.Client(), coll: db.Collection(stateCollection)}
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	var doc tokenDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": domain.TokenKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("mongo find token: %w", err)
	}
	if doc.Value == "" {
		return "", domain.ErrTokenNotFound
	}
	return doc.Value, nil
}

func (s *TokenStore) Set(ctx context.Context, token string) error {
	update := bson.M{"$set": bson.M{"value": token, "updated_at": time.Now().UTC()}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": domain.TokenKey}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert token: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": domain.TokenKey}); err != nil {
		return fmt.Errorf("mongo delete token: %w", err)
	}
	return nil
}

func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *TokenStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
