package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrUserExists
	}
	clone := *user
	r.users[user.Email] = &clone
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrInvalidPasswordOrEmail
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrInvalidUser
}

func testSignupInput() ports.SignupInput {
	return ports.SignupInput{
		Email:     "alice@example.com",
		Password:  "Abcdef1",
		FirstName: "Alice",
		LastName:  "Cooper",
		Age:       30,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.MinCost, zerolog.Nop())

	reply, err := svc.Signup(context.Background(), testSignupInput())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if reply.Email != "alice@example.com" || reply.FirstName != "Alice" || reply.Age != 30 {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if reply.ID == "" {
		t.Fatalf("expected generated id")
	}

	stored := repo.users["alice@example.com"]
	if stored.Password == "Abcdef1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Abcdef1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.MinCost, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), testSignupInput()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), testSignupInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected user_exists, got %v", err)
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.MinCost, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), testSignupInput()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, err := svc.Signin(context.Background(), "alice@example.com", "Abcdef1")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user"] != repo.users["alice@example.com"].ID.Hex() {
		t.Fatalf("expected user claim to carry the user id, got %v", claims["user"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Signin_UnifiedFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, bcrypt.MinCost, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), testSignupInput()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	if _, err := svc.Signin(context.Background(), "alice@example.com", "WrongPass1"); !errors.Is(err, domain.ErrInvalidPasswordOrEmail) {
		t.Fatalf("expected invalid_password_or_email for wrong password, got %v", err)
	}
	if _, err := svc.Signin(context.Background(), "ghost@example.com", "Abcdef1"); !errors.Is(err, domain.ErrInvalidPasswordOrEmail) {
		t.Fatalf("expected invalid_password_or_email for unknown email, got %v", err)
	}
}
