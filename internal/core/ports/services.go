package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
)

// SignupInput carries a validated signup payload. Password is plaintext here;
// the service hashes it before the record is built.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Age       int
}

// AuthService implements account registration and token issuance.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.UserReply, error)
	// Signin returns a signed token embedding the user identity. A missing
	// user and a wrong password are indistinguishable to the caller.
	Signin(ctx context.Context, email, password string) (string, error)
}

// CreateAuthorInput carries a validated create-author payload.
type CreateAuthorInput struct {
	Name        string
	Surname     string
	Nationality string
	Biography   string
}

// ReplaceAuthorInput is a patch: nil fields keep their stored values.
type ReplaceAuthorInput struct {
	ID          primitive.ObjectID
	Name        *string
	Surname     *string
	Nationality *string
	Biography   *string
}

// AuthorService implements the author use cases. Mutating operations take
// the acting user's identity for the ownership check.
type AuthorService interface {
	Create(ctx context.Context, input CreateAuthorInput, creatorID primitive.ObjectID) (*domain.AuthorReply, error)
	FindAll(ctx context.Context, filter AuthorFilter) ([]*domain.AuthorReply, error)
	Replace(ctx context.Context, input ReplaceAuthorInput, actingUserID primitive.ObjectID) (*domain.AuthorReply, error)
	Remove(ctx context.Context, id primitive.ObjectID, actingUserID primitive.ObjectID) (*domain.AuthorReply, error)
}

// CreateBookInput carries a validated create-book payload.
type CreateBookInput struct {
	Title         string
	Description   string
	NumberOfPages int
	Category      string
	AuthorsIDs    []primitive.ObjectID
}

// ReplaceBookInput is a patch: nil fields keep their stored values. A
// non-nil AuthorsIDs replaces the whole reference list and is re-validated.
type ReplaceBookInput struct {
	ID            primitive.ObjectID
	Title         *string
	Description   *string
	NumberOfPages *int
	Category      *string
	AuthorsIDs    []primitive.ObjectID
}

// BookService implements the book use cases.
type BookService interface {
	Create(ctx context.Context, input CreateBookInput, creatorID primitive.ObjectID) (*domain.BookReply, error)
	FindAll(ctx context.Context, filter BookFilter) ([]*domain.BookReply, error)
	Replace(ctx context.Context, input ReplaceBookInput, actingUserID primitive.ObjectID) (*domain.BookReply, error)
	Remove(ctx context.Context, id primitive.ObjectID, actingUserID primitive.ObjectID) (*domain.BookReply, error)
}
