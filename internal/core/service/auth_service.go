package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// AuthService implements signup and signin.
type AuthService struct {
	users      ports.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup hashes the password, mints the user record and persists it.
// A duplicate email surfaces as ErrUserExists; any other persistence
// failure is translated to ErrCannotCreateUser.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.UserReply, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, domain.ErrCannotCreateUser
	}

	user := domain.NewUser(input.Email, string(hash), input.FirstName, input.LastName, input.Age)

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, domain.ErrCannotCreateUser
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("user signed up")
	return user.Reply(), nil
}

// Signin verifies the credentials and issues a signed token carrying the
// user identity. An unknown email and a wrong password produce the same
// error so callers cannot probe for registered accounts.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.ErrInvalidPasswordOrEmail
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", domain.ErrInvalidPasswordOrEmail
	}

	claims := jwt.MapClaims{
		"user": user.ID.Hex(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", domain.ErrInvalidPasswordOrEmail
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("user signed in")
	return token, nil
}
