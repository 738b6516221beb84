package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// AuthorRepository persists authors in the "authors" collection.
type AuthorRepository struct {
	col *mongo.Collection
}

func NewAuthorRepository(store *Store) *AuthorRepository {
	return &AuthorRepository{col: store.db.Collection(authorsCollection)}
}

func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	if _, err := r.col.InsertOne(ctx, author); err != nil {
		return fmt.Errorf("insert author: %w", err)
	}
	return nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Author, error) {
	var author domain.Author
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&author); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return &author, nil
}

// FindAll applies the filter and a skip/limit window derived from page and
// limit. No sort is imposed; documents come back in insertion order.
func (r *AuthorRepository) FindAll(ctx context.Context, filter ports.AuthorFilter) ([]*domain.Author, error) {
	query := bson.M{}

	if filter.Name != "" {
		query["name"] = substringMatch(filter.Name)
	}
	if filter.Surname != "" {
		query["surname"] = substringMatch(filter.Surname)
	}
	if filter.Biography != "" {
		query["biography"] = substringMatch(filter.Biography)
	}
	if filter.Nationality != "" {
		query["nationality"] = filter.Nationality
	}

	cursor, err := r.col.Find(ctx, query, pageWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}

	var authors []*domain.Author
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}

func (r *AuthorRepository) Replace(ctx context.Context, author *domain.Author) error {
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": author.ID}, author); err != nil {
		return fmt.Errorf("replace author: %w", err)
	}
	return nil
}

func (r *AuthorRepository) Remove(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("remove author: %w", err)
	}
	return nil
}

// substringMatch builds a case-insensitive substring condition.
func substringMatch(s string) bson.M {
	return bson.M{"$regex": primitive.Regex{Pattern: ".*" + s + ".*", Options: "i"}}
}

// pageWindow converts 1-based page/limit into skip/limit find options,
// falling back to the catalog defaults when unset.
func pageWindow(page, limit int) *options.FindOptions {
	if page <= 0 {
		page = domain.DefaultPage
	}
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	return options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}
