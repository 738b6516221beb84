package handler

import (
	"testing"

	"github.com/bookvault/library-api/internal/core/domain"
)

func TestCheckString(t *testing.T) {
	if _, err := checkString("hello", domain.ErrNameNotString); err != nil {
		t.Fatalf("string value rejected: %v", err)
	}
	if _, err := checkString(42.0, domain.ErrNameNotString); err != domain.ErrNameNotString {
		t.Fatalf("number must fail with the field code, got %v", err)
	}
	if _, err := checkString(nil, domain.ErrNameNotString); err != domain.ErrNameNotString {
		t.Fatalf("absent value must fail with the field code, got %v", err)
	}
}

func TestCheckOptionalString(t *testing.T) {
	s, err := checkOptionalString(nil, domain.ErrNameNotString)
	if err != nil || s != nil {
		t.Fatalf("absent value must pass through as nil, got %v %v", s, err)
	}
	s, err = checkOptionalString("", domain.ErrNameNotString)
	if err != nil || s != nil {
		t.Fatalf("empty string counts as absent, got %v %v", s, err)
	}
	s, err = checkOptionalString("x", domain.ErrNameNotString)
	if err != nil || s == nil || *s != "x" {
		t.Fatalf("present string must come back, got %v %v", s, err)
	}
	if _, err := checkOptionalString(1.0, domain.ErrNameNotString); err != domain.ErrNameNotString {
		t.Fatalf("non-string must fail with the field code, got %v", err)
	}
}

func TestCheckNumber(t *testing.T) {
	n, err := checkNumber(12.0, domain.ErrAgeNotNumber)
	if err != nil || n != 12 {
		t.Fatalf("json number: got %d %v", n, err)
	}
	n, err = checkNumber("34", domain.ErrAgeNotNumber)
	if err != nil || n != 34 {
		t.Fatalf("numeric string: got %d %v", n, err)
	}
	if _, err := checkNumber("not a number", domain.ErrAgeNotNumber); err != domain.ErrAgeNotNumber {
		t.Fatalf("non-numeric string must fail, got %v", err)
	}
	if _, err := checkNumber(true, domain.ErrAgeNotNumber); err != domain.ErrAgeNotNumber {
		t.Fatalf("bool must fail, got %v", err)
	}
}

func TestCheckEmail(t *testing.T) {
	if err := checkEmail("reader@example.com"); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}
	if err := checkEmail("not-an-email"); err != domain.ErrInvalidEmail {
		t.Fatalf("invalid address must return invalid_email, got %v", err)
	}
}

func TestCheckObjectID(t *testing.T) {
	id, err := checkObjectID("64f0c8e2a1b2c3d4e5f60718", domain.ErrInvalidAuthorID)
	if err != nil {
		t.Fatalf("valid hex rejected: %v", err)
	}
	if id.Hex() != "64f0c8e2a1b2c3d4e5f60718" {
		t.Fatalf("round trip: %s", id.Hex())
	}
	if _, err := checkObjectID("nope", domain.ErrInvalidAuthorID); err != domain.ErrInvalidAuthorID {
		t.Fatalf("bad hex must fail with the field code, got %v", err)
	}
}

func TestCheckAuthorsIDs(t *testing.T) {
	ids, err := checkAuthorsIDs([]any{"64f0c8e2a1b2c3d4e5f60718"})
	if err != nil || len(ids) != 1 {
		t.Fatalf("valid list: got %v %v", ids, err)
	}
	if _, err := checkAuthorsIDs([]any{42.0}); err != domain.ErrAuthorIDNotString {
		t.Fatalf("non-string element, got %v", err)
	}
	if _, err := checkAuthorsIDs([]any{"bad-hex"}); err != domain.ErrInvalidAuthorID {
		t.Fatalf("malformed element, got %v", err)
	}
}
