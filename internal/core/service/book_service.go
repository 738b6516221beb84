package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// BookService implements the book use cases.
type BookService struct {
	books   ports.BookRepository
	authors ports.AuthorRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewBookService(books ports.BookRepository, authors ports.AuthorRepository, users ports.UserRepository, logger zerolog.Logger) *BookService {
	return &BookService{books: books, authors: authors, users: users, logger: logger}
}

// Create verifies the acting user and every referenced author before
// persisting. Running inside one transaction, a missing author aborts the
// whole operation and no partial book is stored.
func (s *BookService) Create(ctx context.Context, input ports.CreateBookInput, creatorID primitive.ObjectID) (*domain.BookReply, error) {
	if _, err := s.users.FindByID(ctx, creatorID); err != nil {
		return nil, domain.ErrInvalidUser
	}

	if err := s.checkAuthorsExist(ctx, input.AuthorsIDs); err != nil {
		return nil, err
	}

	book := domain.NewBook(input.Title, input.Description, input.NumberOfPages, input.Category, input.AuthorsIDs, creatorID)

	if err := s.books.Create(ctx, book); err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, domain.ErrCannotCreateBook
	}

	s.logger.Info().Str("book_id", book.ID.Hex()).Msg("book created")
	return book.Reply(), nil
}

// FindAll returns the page of books matching the filter, in insertion order.
func (s *BookService) FindAll(ctx context.Context, filter ports.BookFilter) ([]*domain.BookReply, error) {
	books, err := s.books.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	replies := make([]*domain.BookReply, 0, len(books))
	for _, b := range books {
		replies = append(replies, b.Reply())
	}
	return replies, nil
}

// Replace applies the provided fields onto the stored record. A replaced
// authorsIds list is re-validated against existing authors. Only the
// creator may replace.
func (s *BookService) Replace(ctx context.Context, input ports.ReplaceBookInput, actingUserID primitive.ObjectID) (*domain.BookReply, error) {
	book, err := s.books.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, domain.ErrCannotReplaceBook
	}

	if book.CreatorID != actingUserID {
		return nil, domain.ErrInvalidUser
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.NumberOfPages != nil {
		book.NumberOfPages = *input.NumberOfPages
	}
	if input.Category != nil {
		book.Category = *input.Category
	}
	if input.AuthorsIDs != nil {
		if err := s.checkAuthorsExist(ctx, input.AuthorsIDs); err != nil {
			return nil, err
		}
		book.AuthorsIDs = input.AuthorsIDs
	}

	if err := s.books.Replace(ctx, book); err != nil {
		s.logger.Error().Err(err).Str("book_id", book.ID.Hex()).Msg("failed to replace book")
		return nil, domain.ErrCannotReplaceBook
	}

	return book.Reply(), nil
}

// Remove deletes the book and returns its pre-deletion reply shape. Only
// the creator may remove.
func (s *BookService) Remove(ctx context.Context, id primitive.ObjectID, actingUserID primitive.ObjectID) (*domain.BookReply, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, domain.ErrCannotRemoveBook
	}

	if book.CreatorID != actingUserID {
		return nil, domain.ErrInvalidUser
	}

	if err := s.books.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("book_id", id.Hex()).Msg("failed to remove book")
		return nil, domain.ErrCannotRemoveBook
	}

	s.logger.Info().Str("book_id", id.Hex()).Msg("book removed")
	return book.Reply(), nil
}

func (s *BookService) checkAuthorsExist(ctx context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		if _, err := s.authors.FindByID(ctx, id); err != nil {
			return domain.ErrAuthorNotFound
		}
	}
	return nil
}
