package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/api/metrics"
	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// BookHandler handles the book endpoints.
type BookHandler struct {
	service ports.BookService
	tx      ports.TxRunner
}

func NewBookHandler(service ports.BookService, tx ports.TxRunner) *BookHandler {
	return &BookHandler{service: service, tx: tx}
}

type createBookRequest struct {
	Title         any `json:"title"`
	Description   any `json:"description"`
	Category      any `json:"category"`
	NumberOfPages any `json:"numberOfPages"`
	AuthorsIDs    any `json:"authorsIds"`
}

type findAllBooksRequest struct {
	Page        any `json:"page"`
	Limit       any `json:"limit"`
	Title       any `json:"title"`
	Description any `json:"description"`
	MinPages    any `json:"minNumberOfPages"`
	MaxPages    any `json:"maxNumberOfPages"`
	Category    any `json:"category"`
	AuthorsIDs  any `json:"authorsIds"`
}

type replaceBookRequest struct {
	ID            any `json:"id"`
	Title         any `json:"title"`
	Description   any `json:"description"`
	NumberOfPages any `json:"numberOfPages"`
	Category      any `json:"category"`
	AuthorsIDs    any `json:"authorsIds"`
}

// Create handles POST /api/book/create. Every referenced author must exist;
// a single unknown author aborts the whole creation.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.BookReply
// @Failure      400  {object}  messageResponse
// @Router       /api/book/create [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	input, err := validateCreateBook(req)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.BookReply
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

	metrics.EntityOpsTotal.WithLabelValues("book", "create").Inc()
	return c.JSON(http.StatusOK, reply)
}

// FindAll handles POST /api/book/all.
func (h *BookHandler) FindAll(c echo.Context) error {
	var req findAllBooksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	filter, err := validateFindAllBooks(req)
	if err != nil {
		return badRequest(c, err)
	}

	var replies []*domain.BookReply
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

// Replace handles POST /api/book/replace. A replaced authorsIds list is
// re-validated; omitted fields keep their stored values.
func (h *BookHandler) Replace(c echo.Context) error {
	var req replaceBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	input, err := validateReplaceBook(req)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.BookReply
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

	metrics.EntityOpsTotal.WithLabelValues("book", "replace").Inc()
	return c.JSON(http.StatusOK, reply)
}

// Remove handles POST /api/book/remove and returns the pre-deletion
// snapshot of the book.
func (h *BookHandler) Remove(c echo.Context) error {
	var req removeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	userID, err := actingUserID(c)
	if err != nil {
		return err
	}

	rawID, err := checkString(req.ID, domain.ErrInvalidBookID)
	if err != nil {
		return badRequest(c, err)
	}
	id, err := checkObjectID(rawID, domain.ErrInvalidBookID)
	if err != nil {
		return badRequest(c, err)
	}

	var reply *domain.BookReply
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

	metrics.EntityOpsTotal.WithLabelValues("book", "remove").Inc()
	return c.JSON(http.StatusOK, reply)
}

func validateCreateBook(req createBookRequest) (ports.CreateBookInput, error) {
	var input ports.CreateBookInput

	title, err := checkString(req.Title, domain.ErrTitleNotString)
	if err != nil {
		return input, err
	}
	description, err := checkString(req.Description, domain.ErrDescriptionNotString)
	if err != nil {
		return input, err
	}
	category, err := checkString(req.Category, domain.ErrCategoryNotString)
	if err != nil {
		return input, err
	}
	rawAuthors, ok := req.AuthorsIDs.([]any)
	if !ok || len(rawAuthors) == 0 {
		return input, domain.ErrInvalidAuthorsIDs
	}
	authorsIDs, err := checkAuthorsIDs(rawAuthors)
	if err != nil {
		return input, err
	}
	pages, err := checkNumber(req.NumberOfPages, domain.ErrPagesNotNumber)
	if err != nil {
		return input, err
	}
	if err := checkLen(title, domain.MinTitleLength, domain.MaxTitleLength, domain.ErrInvalidTitleLength); err != nil {
		return input, err
	}
	if err := checkLen(description, domain.MinDescriptionLength, domain.MaxDescriptionLength, domain.ErrInvalidDescLength); err != nil {
		return input, err
	}
	if err := check(pages >= domain.MinNumberOfPages && pages <= domain.MaxNumberOfPages, domain.ErrInvalidNumberOfPages); err != nil {
		return input, err
	}
	if err := check(domain.LatinWithSymbolsRegexp.MatchString(title), domain.ErrOnlyLatinTitle); err != nil {
		return input, err
	}
	if err := check(domain.LatinWithSymbolsRegexp.MatchString(description), domain.ErrOnlyLatinDescription); err != nil {
		return input, err
	}
	if err := check(domain.ValidCategory(category), domain.ErrInvalidCategory); err != nil {
		return input, err
	}

	return ports.CreateBookInput{
		Title:         title,
		Description:   description,
		NumberOfPages: pages,
		Category:      category,
		AuthorsIDs:    authorsIDs,
	}, nil
}

func validateFindAllBooks(req findAllBooksRequest) (ports.BookFilter, error) {
	var filter ports.BookFilter

	page, err := checkOptionalNumber(req.Page, domain.ErrPageNotNumber)
	if err != nil {
		return filter, err
	}
	limit, err := checkOptionalNumber(req.Limit, domain.ErrLimitNotNumber)
	if err != nil {
		return filter, err
	}
	minPages, err := checkOptionalNumber(req.MinPages, domain.ErrMinPagesNotNumber)
	if err != nil {
		return filter, err
	}
	maxPages, err := checkOptionalNumber(req.MaxPages, domain.ErrMaxPagesNotNumber)
	if err != nil {
		return filter, err
	}
	title, err := checkOptionalString(req.Title, domain.ErrTitleNotString)
	if err != nil {
		return filter, err
	}
	description, err := checkOptionalString(req.Description, domain.ErrDescriptionNotString)
	if err != nil {
		return filter, err
	}
	category, err := checkOptionalString(req.Category, domain.ErrCategoryNotString)
	if err != nil {
		return filter, err
	}
	rawAuthors, err := checkOptionalArray(req.AuthorsIDs, domain.ErrInvalidAuthorsIDs)
	if err != nil {
		return filter, err
	}

	var authorsIDs []primitive.ObjectID
	if rawAuthors != nil {
		authorsIDs, err = checkAuthorsIDs(rawAuthors)
		if err != nil {
			return filter, err
		}
	}

	if page != nil {
		filter.Page = *page
	}
	if limit != nil {
		filter.Limit = *limit
	}
	if minPages != nil {
		filter.MinPages = *minPages
	}
	if maxPages != nil {
		filter.MaxPages = *maxPages
	}
	if title != nil {
		filter.Title = *title
	}
	if description != nil {
		filter.Description = *description
	}
	if category != nil {
		filter.Category = *category
	}
	filter.AuthorsIDs = authorsIDs
	return filter, nil
}

func validateReplaceBook(req replaceBookRequest) (ports.ReplaceBookInput, error) {
	var input ports.ReplaceBookInput

	title, err := checkOptionalString(req.Title, domain.ErrTitleNotString)
	if err != nil {
		return input, err
	}
	description, err := checkOptionalString(req.Description, domain.ErrDescriptionNotString)
	if err != nil {
		return input, err
	}
	category, err := checkOptionalString(req.Category, domain.ErrCategoryNotString)
	if err != nil {
		return input, err
	}
	pages, err := checkOptionalNumber(req.NumberOfPages, domain.ErrPagesNotNumber)
	if err != nil {
		return input, err
	}

	rawID, err := checkString(req.ID, domain.ErrInvalidBookID)
	if err != nil {
		return input, err
	}
	id, err := checkObjectID(rawID, domain.ErrInvalidBookID)
	if err != nil {
		return input, err
	}
	if err := check(title != nil || description != nil || pages != nil || category != nil || req.AuthorsIDs != nil, domain.ErrInvalidBookReplacing); err != nil {
		return input, err
	}

	if title != nil {
		if err := checkLen(*title, domain.MinTitleLength, domain.MaxTitleLength, domain.ErrInvalidTitleLength); err != nil {
			return input, err
		}
		if err := check(domain.LatinWithSymbolsRegexp.MatchString(*title), domain.ErrOnlyLatinTitle); err != nil {
			return input, err
		}
	}
	if description != nil {
		if err := checkLen(*description, domain.MinDescriptionLength, domain.MaxDescriptionLength, domain.ErrInvalidDescLength); err != nil {
			return input, err
		}
		if err := check(domain.LatinWithSymbolsRegexp.MatchString(*description), domain.ErrOnlyLatinDescription); err != nil {
			return input, err
		}
	}
	if category != nil {
		if err := check(domain.ValidCategory(*category), domain.ErrInvalidCategory); err != nil {
			return input, err
		}
	}
	if pages != nil {
		if err := check(*pages >= domain.MinNumberOfPages && *pages <= domain.MaxNumberOfPages, domain.ErrInvalidNumberOfPages); err != nil {
			return input, err
		}
	}

	var authorsIDs []primitive.ObjectID
	if req.AuthorsIDs != nil {
		rawAuthors, err := checkOptionalArray(req.AuthorsIDs, domain.ErrInvalidAuthorsIDs)
		if err != nil {
			return input, err
		}
		authorsIDs, err = checkAuthorsIDs(rawAuthors)
		if err != nil {
			return input, err
		}
	}

	return ports.ReplaceBookInput{
		ID:            id,
		Title:         title,
		Description:   description,
		NumberOfPages: pages,
		Category:      category,
		AuthorsIDs:    authorsIDs,
	}, nil
}
