package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookvault/library-api/internal/api/metrics"
	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// AuthorHandler handles the author endpoints.
type AuthorHandler struct {
	service ports.AuthorService
	tx      ports.TxRunner
}

func NewAuthorHandler(service ports.AuthorService, tx ports.TxRunner) *AuthorHandler {
	return &AuthorHandler{service: service, tx: tx}
}

type createAuthorRequest struct {
	Name        any `json:"name"`
	Surname     any `json:"surname"`
	Nationality any `json:"nationality"`
	Biography   any `json:"biography"`
}

type findAllAuthorsRequest struct {
	Page        any `json:"page"`
	Limit       any `json:"limit"`
	Name        any `json:"name"`
	Surname     any `json:"surname"`
	Nationality any `json:"nationality"`
	Biography   any `json:"biography"`
}

type replaceAuthorRequest struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	Surname     any `json:"surname"`
	Nationality any `json:"nationality"`
	Biography   any `json:"biography"`
}

type removeRequest struct {
	ID any `json:"id"`
}

// Create handles POST /api/author/create.
//
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AuthorReply
// @Failure      400  {object}  messageResponse
// @Router       /api/author/create [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req createAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	input, err := validateCreateAuthor(req)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.AuthorReply
	err = h.tx.WithTransaction(c.Request().Context(), func(ctx context.Context) error {
		r, err := h.service.Create(ctx, input, userID)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		return badRequest(c, err)
	}

	metrics.EntityOpsTotal.WithLabelValues("author", "create").Inc()
	return c.JSON(http.StatusOK, reply)
}

// FindAll handles POST /api/author/all.
func (h *AuthorHandler) FindAll(c echo.Context) error {
	var req findAllAuthorsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	filter, err := validateFindAllAuthors(req)
	if err != nil {
		return badRequest(c, err)
	}

	var replies []*domain.AuthorReply
	err = h.tx.WithTransaction(c.Request().Context(), func(ctx context.Context) error {
		r, err := h.service.FindAll(ctx, filter)
		if err != nil {
			return err
		}
		replies = r
		return nil
	})
	if err != nil {
		return badRequest(c, err)
	}

	return c.JSON(http.StatusOK, replies)
}

// Replace handles POST /api/author/replace. Omitted fields keep their
// stored values; at least one replaceable field must be present.
func (h *AuthorHandler) Replace(c echo.Context) error {
	var req replaceAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	input, err := validateReplaceAuthor(req)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.AuthorReply
	err = h.tx.WithTransaction(c.Request().Context(), func(ctx context.Context) error {
		r, err := h.service.Replace(ctx, input, userID)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		return badRequest(c, err)
	}

	metrics.EntityOpsTotal.WithLabelValues("author", "replace").Inc()
	return c.JSON(http.StatusOK, reply)
}

// Remove handles POST /api/author/remove and returns the pre-deletion
// snapshot of the author.
func (h *AuthorHandler) Remove(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	rawID, err := checkString(req.ID, domain.ErrInvalidAuthorID)
	if err != nil {
		return badRequest(c, err)
	}
	id, err := checkObjectID(rawID, domain.ErrInvalidAuthorID)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.AuthorReply
	err = h.tx.WithTransaction(c.Request().Context(), func(ctx context.Context) error {
		r, err := h.service.Remove(ctx, id, userID)
		if err != nil {
			return err
		}
		reply = r
		return nil
	})
	if err != nil {
		return badRequest(c, err)
	}

	metrics.EntityOpsTotal.WithLabelValues("author", "remove").Inc()
	return c.JSON(http.StatusOK, reply)
}

func validateCreateAuthor(req createAuthorRequest) (ports.CreateAuthorInput, error) {
	var input ports.CreateAuthorInput

	name, err := checkString(req.Name, domain.ErrNameNotString)
	if err != nil {
		return input, err
	}
	surname, err := checkString(req.Surname, domain.ErrSurnameNotString)
	if err != nil {
		return input, err
	}
	nationality, err := checkString(req.Nationality, domain.ErrNationalityNotString)
	if err != nil {
		return input, err
	}
	biography, err := checkString(req.Biography, domain.ErrBiographyNotString)
	if err != nil {
		return input, err
	}
	if err := checkLen(name, domain.MinAuthorNameLength, domain.MaxAuthorNameLength, domain.ErrInvalidNameLength); err != nil {
		return input, err
	}
	if err := checkLen(surname, domain.MinAuthorSurnameLength, domain.MaxAuthorSurnameLength, domain.ErrInvalidSurnameLength); err != nil {
		return input, err
	}
	if err := checkLen(biography, domain.MinBiographyLength, domain.MaxBiographyLength, domain.ErrInvalidBiographyLength); err != nil {
		return input, err
	}
	if err := check(domain.LatinOnlyRegexp.MatchString(name), domain.ErrOnlyLatinName); err != nil {
		return input, err
	}
	if err := check(domain.LatinOnlyRegexp.MatchString(surname), domain.ErrOnlyLatinSurname); err != nil {
		return input, err
	}
	if err := check(domain.LatinWithSymbolsRegexp.MatchString(biography), domain.ErrOnlyLatinBiography); err != nil {
		return input, err
	}
	if err := check(domain.ValidNationality(nationality), domain.ErrInvalidNationality); err != nil {
		return input, err
	}

	return ports.CreateAuthorInput{
		Name:        name,
		Surname:     surname,
		Nationality: nationality,
		Biography:   biography,
	}, nil
}

func validateFindAllAuthors(req findAllAuthorsRequest) (ports.AuthorFilter, error) {
	var filter ports.AuthorFilter

	page, err := checkOptionalNumber(req.Page, domain.ErrPageNotNumber)
	if err != nil {
		return filter, err
	}
	limit, err := checkOptionalNumber(req.Limit, domain.ErrLimitNotNumber)
	if err != nil {
		return filter, err
	}
	name, err := checkOptionalString(req.Name, domain.ErrNameNotString)
	if err != nil {
		return filter, err
	}
	surname, err := checkOptionalString(req.Surname, domain.ErrSurnameNotString)
	if err != nil {
		return filter, err
	}
	nationality, err := checkOptionalString(req.Nationality, domain.ErrNationalityNotString)
	if err != nil {
		return filter, err
	}
	biography, err := checkOptionalString(req.Biography, domain.ErrBiographyNotString)
	if err != nil {
		return filter, err
	}

	if page != nil {
		filter.Page = *page
	}
	if limit != nil {
		filter.Limit = *limit
	}
	if name != nil {
		filter.Name = *name
	}
	if surname != nil {
		filter.Surname = *surname
	}
	if nationality != nil {
		filter.Nationality = *nationality
	}
	if biography != nil {
		filter.Biography = *biography
	}
	return filter, nil
}

func validateReplaceAuthor(req replaceAuthorRequest) (ports.ReplaceAuthorInput, error) {
	var input ports.ReplaceAuthorInput

	name, err := checkOptionalString(req.Name, domain.ErrNameNotString)
	if err != nil {
		return input, err
	}
	surname, err := checkOptionalString(req.Surname, domain.ErrSurnameNotString)
	if err != nil {
		return input, err
	}
	nationality, err := checkOptionalString(req.Nationality, domain.ErrNationalityNotString)
	if err != nil {
		return input, err
	}
	biography, err := checkOptionalString(req.Biography, domain.ErrBiographyNotString)
	if err != nil {
		return input, err
	}

	rawID, err := checkString(req.ID, domain.ErrInvalidAuthorID)
	if err != nil {
		return input, err
	}
	id, err := checkObjectID(rawID, domain.ErrInvalidAuthorID)
	if err != nil {
		return input, err
	}
	if err := check(name != nil || surname != nil || nationality != nil || biography != nil, domain.ErrInvalidAuthorReplacing); err != nil {
		return input, err
	}

	if name != nil {
		if err := checkLen(*name, domain.MinAuthorNameLength, domain.MaxAuthorNameLength, domain.ErrInvalidNameLength); err != nil {
			return input, err
		}
		if err := check(domain.LatinOnlyRegexp.MatchString(*name), domain.ErrOnlyLatinName); err != nil {
			return input, err
		}
	}
	if surname != nil {
		if err := checkLen(*surname, domain.MinAuthorSurnameLength, domain.MaxAuthorSurnameLength, domain.ErrInvalidSurnameLength); err != nil {
			return input, err
		}
		if err := check(domain.LatinOnlyRegexp.MatchString(*surname), domain.ErrOnlyLatinSurname); err != nil {
			return input, err
		}
	}
	if nationality != nil {
		if err := check(domain.ValidNationality(*nationality), domain.ErrInvalidNationality); err != nil {
			return input, err
		}
	}
	if biography != nil {
		if err := checkLen(*biography, domain.MinBiographyLength, domain.MaxBiographyLength, domain.ErrInvalidBiographyLength); err != nil {
			return input, err
		}
		if err := check(domain.LatinWithSymbolsRegexp.MatchString(*biography), domain.ErrOnlyLatinBiography); err != nil {
			return input, err
		}
	}

	return ports.ReplaceAuthorInput{
		ID:          id,
		Name:        name,
		Surname:     surname,
		Nationality: nationality,
		Biography:   biography,
	}, nil
}
