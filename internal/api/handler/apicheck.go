package handler

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
)

// validate backs the shape predicates (email format, length bounds). The
// per-field error codes and their first-failure ordering are owned by the
// handlers, so validator is used one field at a time via Var.
var validate = validator.New()

// checkString asserts that a decoded JSON value is a string.
func checkString(v any, fail *domain.APIError) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fail
	}
	return s, nil
}

// checkOptionalString accepts an absent value; present values must be
// strings. Empty strings count as absent, mirroring the optional-field
// semantics of the replace endpoints.
func checkOptionalString(v any, fail *domain.APIError) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fail
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// checkNumber asserts that a decoded JSON value is a finite number.
// Numeric strings are accepted and converted.
func checkNumber(v any, fail *domain.APIError) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fail
		}
		return int(f), nil
	default:
		return 0, fail
	}
}

// checkOptionalNumber accepts an absent value; present values must satisfy
// checkNumber.
func checkOptionalNumber(v any, fail *domain.APIError) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := checkNumber(v, fail)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// checkOptionalArray accepts an absent value; present values must be JSON
// arrays.
func checkOptionalArray(v any, fail *domain.APIError) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fail
	}
	return arr, nil
}

// check raises fail when the condition does not hold.
func check(condition bool, fail *domain.APIError) error {
	if !condition {
		return fail
	}
	return nil
}

// checkEmail validates the address format.
func checkEmail(s string) error {
	if validate.Var(s, "required,email") != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}

// checkLen validates an inclusive character-length bound.
func checkLen(s string, min, max int, fail *domain.APIError) error {
	if validate.Var(s, fmt.Sprintf("min=%d,max=%d", min, max)) != nil {
		return fail
	}
	return nil
}

// checkObjectID parses an entity identity from its external string form.
func checkObjectID(s string, fail *domain.APIError) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fail
	}
	return id, nil
}

// checkAuthorsIDs validates a decoded authorsIds array element by element.
func checkAuthorsIDs(arr []any) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(arr))
	for _, v := range arr {
		s, err := checkString(v, domain.ErrAuthorIDNotString)
		if err != nil {
			return nil, err
		}
		id, err := checkObjectID(s, domain.ErrInvalidAuthorID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
