package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bookvault/library-api/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/author/all", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID string
	next := func(c echo.Context) error {
		seenUserID, _ = c.Get("userID").(string)
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, seenUserID
}

func assertRejected(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != code {
		t.Fatalf("message = %q, want %q", body.Message, code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "")
	assertRejected(t, rec, domain.ErrTokenNotProvided.Error())
}

func TestAuth_BadScheme(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"user": "abc", "exp": time.Now().Add(time.Hour).Unix()})
	rec, _ := runAuth(t, "Basic "+token)
	assertRejected(t, rec, domain.ErrInvalidToken.Error())
}

func TestAuth_MalformedToken(t *testing.T) {
	rec, _ := runAuth(t, "Bearer not-a-jwt")
	assertRejected(t, rec, domain.ErrInvalidToken.Error())
}

func TestAuth_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"user": "abc", "exp": time.Now().Add(time.Hour).Unix()})
	rec, _ := runAuth(t, "Bearer "+token)
	assertRejected(t, rec, domain.ErrInvalidToken.Error())
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"user": "abc", "exp": time.Now().Add(-time.Hour).Unix()})
	rec, _ := runAuth(t, "Bearer "+token)
	assertRejected(t, rec, domain.ErrInvalidToken.Error())
}

func TestAuth_MissingUserClaim(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	rec, _ := runAuth(t, "Bearer "+token)
	assertRejected(t, rec, domain.ErrInvalidToken.Error())
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"user": "64f0c8e2a1b2c3d4e5f60718", "exp": time.Now().Add(time.Hour).Unix()})
	rec, userID := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if userID != "64f0c8e2a1b2c3d4e5f60718" {
		t.Fatalf("userID in context = %q", userID)
	}
}
