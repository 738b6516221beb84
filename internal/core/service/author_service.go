package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// AuthorService implements the author use cases.
type AuthorService struct {
	authors ports.AuthorRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewAuthorService(authors ports.AuthorRepository, users ports.UserRepository, logger zerolog.Logger) *AuthorService {
	return &AuthorService{authors: authors, users: users, logger: logger}
}

// Create verifies the acting user exists, then persists a fresh author
// record stamped with that user as creator.
func (s *AuthorService) Create(ctx context.Context, input ports.CreateAuthorInput, creatorID primitive.ObjectID) (*domain.AuthorReply, error) {
	if _, err := s.users.FindByID(ctx, creatorID); err != nil {
		return nil, domain.ErrInvalidUser
	}

	author := domain.NewAuthor(input.Name, input.Surname, input.Nationality, input.Biography, creatorID)

	if err := s.authors.Create(ctx, author); err != nil {
		s.logger.Error().Err(err).Msg("failed to create author")
		return nil, domain.ErrCannotCreateAuthor
	}

	s.logger.Info().Str("author_id", author.ID.Hex()).Msg("author created")
	return author.Reply(), nil
}

// FindAll returns the page of authors matching the filter, in insertion
// order. A page beyond the data yields an empty slice, not an error.
func (s *AuthorService) FindAll(ctx context.Context, filter ports.AuthorFilter) ([]*domain.AuthorReply, error) {
	authors, err := s.authors.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	replies := make([]*domain.AuthorReply, 0, len(authors))
	for _, a := range authors {
		replies = append(replies, a.Reply())
	}
	return replies, nil
}

// Replace applies the provided fields onto the stored record. Omitted
// fields keep their prior values. Only the creator may replace.
func (s *AuthorService) Replace(ctx context.Context, input ports.ReplaceAuthorInput, actingUserID primitive.ObjectID) (*domain.AuthorReply, error) {
	author, err := s.authors.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, domain.ErrCannotReplaceAuthor
	}

	if author.CreatorID != actingUserID {
		return nil, domain.ErrInvalidUser
	}

	if input.Name != nil {
		author.Name = *input.Name
	}
	if input.Surname != nil {
		author.Surname = *input.Surname
	}
	if input.Nationality != nil {
		author.Nationality = *input.Nationality
	}
	if input.Biography != nil {
		author.Biography = *input.Biography
	}

	if err := s.authors.Replace(ctx, author); err != nil {
		s.logger.Error().Err(err).Str("author_id", author.ID.Hex()).Msg("failed to replace author")
		return nil, domain.ErrCannotReplaceAuthor
	}

	return author.Reply(), nil
}

// Remove deletes the author and returns its pre-deletion reply shape.
// Only the creator may remove. Books referencing the author are left
// untouched; see the Book doc comment about dangling references.
func (s *AuthorService) Remove(ctx context.Context, id primitive.ObjectID, actingUserID primitive.ObjectID) (*domain.AuthorReply, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, domain.ErrCannotRemoveAuthor
	}

	if author.CreatorID != actingUserID {
		return nil, domain.ErrInvalidUser
	}

	if err := s.authors.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("author_id", id.Hex()).Msg("failed to remove author")
		return nil, domain.ErrCannotRemoveAuthor
	}

	s.logger.Info().Str("author_id", id.Hex()).Msg("author removed")
	return author.Reply(), nil
}
