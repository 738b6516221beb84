package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
)

// TxRunner executes a unit of work inside a single database transaction:
// commit on success, abort on any returned error. The transactional session
// travels through the derived context handed to fn.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// AuthorFilter carries the optional find-all parameters for authors.
// String fields are case-insensitive substring matches except Nationality,
// which is an exact match. All provided filters are combined with AND.
type AuthorFilter struct {
	Page        int
	Limit       int
	Name        string
	Surname     string
	Nationality string
	Biography   string
}

// AuthorRepository defines persistence operations for authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Author, error)
	FindAll(ctx context.Context, filter AuthorFilter) ([]*domain.Author, error)
	Replace(ctx context.Context, author *domain.Author) error
	Remove(ctx context.Context, id primitive.ObjectID) error
}

// BookFilter carries the optional find-all parameters for books.
// MinPages/MaxPages bound numberOfPages inclusively; zero means unset.
// AuthorsIDs is a membership test: a book matches when it references any of
// the given authors.
type BookFilter struct {
	Page        int
	Limit       int
	Title       string
	Description string
	MinPages    int
	MaxPages    int
	Category    string
	AuthorsIDs  []primitive.ObjectID
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Book, error)
	FindAll(ctx context.Context, filter BookFilter) ([]*domain.Book, error)
	Replace(ctx context.Context, book *domain.Book) error
	Remove(ctx context.Context, id primitive.ObjectID) error
}
