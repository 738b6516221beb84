package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookvault/library-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Collection names. The store layout is the database's native document
// format, one collection per entity.
const (
	usersCollection   = "users"
	authorsCollection = "authors"
	booksCollection   = "books"
)

// Config captures the minimal settings required to establish a MongoDB
// connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store owns the process-wide MongoDB client. It is created once at startup
// and shared by all repositories; its transaction runner is the only shared
// coordination point.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the client, verifies connectivity with a ping and
// returns the store. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMongoConnectionFailed, err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("%w: %v", domain.ErrMongoConnectionFailed, err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// EnsureIndexes creates the uniqueness constraint on user emails.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// WithTransaction runs fn inside a single transaction: committed when fn
// returns nil, aborted otherwise. The session travels through the context
// handed to fn, so repository calls made with it are transactional.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// Ping reports store connectivity; backs the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Disconnect releases the client. Called once at shutdown.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
