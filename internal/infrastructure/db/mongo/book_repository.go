package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// BookRepository persists books in the "books" collection.
type BookRepository struct {
	col *mongo.Collection
}

func NewBookRepository(store *Store) *BookRepository {
	return &BookRepository{col: store.db.Collection(booksCollection)}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	if _, err := r.col.InsertOne(ctx, book); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Book, error) {
	var book domain.Book
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&book); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return &book, nil
}

// FindAll applies the filter and a skip/limit window derived from page and
// limit. Substring matches on title/description, an inclusive range on
// numberOfPages, exact category, and $in membership on authorsIds.
func (r *BookRepository) FindAll(ctx context.Context, filter ports.BookFilter) ([]*domain.Book, error) {
	query := bson.M{}

	if filter.Title != "" {
		query["title"] = substringMatch(filter.Title)
	}
	if filter.Description != "" {
		query["description"] = substringMatch(filter.Description)
	}
	switch {
	case filter.MinPages > 0 && filter.MaxPages > 0:
		query["numberOfPages"] = bson.M{"$gte": filter.MinPages, "$lte": filter.MaxPages}
	case filter.MinPages > 0:
		query["numberOfPages"] = bson.M{"$gte": filter.MinPages}
	case filter.MaxPages > 0:
		query["numberOfPages"] = bson.M{"$lte": filter.MaxPages}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if len(filter.AuthorsIDs) > 0 {
		query["authorsIds"] = bson.M{"$in": filter.AuthorsIDs}
	}

	cursor, err := r.col.Find(ctx, query, pageWindow(filter.Page, filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}

	var books []*domain.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func (r *BookRepository) Replace(ctx context.Context, book *domain.Book) error {
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": book.ID}, book); err != nil {
		return fmt.Errorf("replace book: %w", err)
	}
	return nil
}

func (r *BookRepository) Remove(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("remove book: %w", err)
	}
	return nil
}
