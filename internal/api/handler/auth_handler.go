package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookvault/library-api/internal/api/metrics"
	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// AuthHandler handles signup and signin.
type AuthHandler struct {
	service ports.AuthService
	tx      ports.TxRunner
}

func NewAuthHandler(service ports.AuthService, tx ports.TxRunner) *AuthHandler {
	return &AuthHandler{service: service, tx: tx}
}

// Fields are decoded as raw JSON values so the type checks can emit the
// exact catalog code for each field, in a fixed order.
type signupRequest struct {
	Email     any `json:"email"`
	Password  any `json:"password"`
	FirstName any `json:"firstName"`
	LastName  any `json:"lastName"`
	Age       any `json:"age"`
}

type signinRequest struct {
	Email    any `json:"email"`
	Password any `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "email, password, firstName, lastName, age"
// @Success      200   {object}  domain.UserReply
// @Failure      400   {object}  messageResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input, err := validateSignup(req)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.UserReply
	err = h.tx.WithTransaction(c.Request().Context(), func(ctx context.Context) error {
		r, err := h.service.Signup(ctx, input)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		return badRequest(c, err)
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, reply)
}

// Signin authenticates a user and returns a bearer token. All failures are
// 401 with a single non-distinguishing code.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "email, password"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	fail := func(err error) error {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: err.Error()})
	}

	email, err := checkString(req.Email, domain.ErrEmailNotString)
	if err != nil {
		return fail(err)
	}
	password, err := checkString(req.Password, domain.ErrPasswordNotString)
	if err != nil {
		return fail(err)
	}

	var token string
	err = h.tx.WithTransaction(c.Request().Context(), func(ctx context.Context) error {
		t, err := h.service.Signin(ctx, email, password)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		return fail(err)
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// validateSignup runs the ordered field checks; the first failing check's
// code is the one returned.
func validateSignup(req signupRequest) (ports.SignupInput, error) {
	var input ports.SignupInput

	email, err := checkString(req.Email, domain.ErrEmailNotString)
	if err != nil {
		return input, err
	}
	password, err := checkString(req.Password, domain.ErrPasswordNotString)
	if err != nil {
		return input, err
	}
	firstName, err := checkString(req.FirstName, domain.ErrFirstNameNotString)
	if err != nil {
		return input, err
	}
	lastName, err := checkString(req.LastName, domain.ErrLastNameNotString)
	if err != nil {
		return input, err
	}
	age, err := checkNumber(req.Age, domain.ErrAgeNotNumber)
	if err != nil {
		return input, err
	}
	if err := checkEmail(email); err != nil {
		return input, err
	}
	if err := check(domain.ValidPassword(password), domain.ErrInvalidPassword); err != nil {
		return input, err
	}
	if err := checkLen(firstName, domain.MinUserNameLength, domain.MaxUserNameLength, domain.ErrInvalidFirstName); err != nil {
		return input, err
	}
	if err := checkLen(lastName, domain.MinUserNameLength, domain.MaxUserNameLength, domain.ErrInvalidLastName); err != nil {
		return input, err
	}
	if err := check(age >= domain.MinAgeValue && age <= domain.MaxAgeValue, domain.ErrInvalidAge); err != nil {
		return input, err
	}

	return ports.SignupInput{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}, nil
}
