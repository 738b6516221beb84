package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookvault/library-api/internal/core/domain"
	"github.com/bookvault/library-api/internal/core/ports"
)

// stubAuthorRepo keeps authors in insertion order and applies the filter
// the way the store would.
type stubAuthorRepo struct {
	authors []*domain.Author
}

func (r *stubAuthorRepo) Create(_ context.Context, author *domain.Author) error {
	clone := *author
	r.authors = append(r.authors, &clone)
	return nil
}

func (r *stubAuthorRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Author, error) {
	for _, a := range r.authors {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAuthorNotFound
}

func (r *stubAuthorRepo) FindAll(_ context.Context, filter ports.AuthorFilter) ([]*domain.Author, error) {
	page := filter.Page
	if page <= 0 {
		page = domain.DefaultPage
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}

	var matched []*domain.Author
	for _, a := range r.authors {
		if filter.Nationality != "" && a.Nationality != filter.Nationality {
			continue
		}
		matched = append(matched, a)
	}

	skip := (page - 1) * limit
	if skip >= len(matched) {
		return nil, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], nil
}

func (r *stubAuthorRepo) Replace(_ context.Context, author *domain.Author) error {
	for i, a := range r.authors {
		if a.ID == author.ID {
			clone := *author
			r.authors[i] = &clone
			return nil
		}
	}
	return domain.ErrAuthorNotFound
}

func (r *stubAuthorRepo) Remove(_ context.Context, id primitive.ObjectID) error {
	for i, a := range r.authors {
		if a.ID == id {
			r.authors = append(r.authors[:i], r.authors[i+1:]...)
			return nil
		}
	}
	return domain.ErrAuthorNotFound
}

func registeredUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	user := domain.NewUser("creator@example.com", "hash", "Carol", "Jones", 40)
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func validAuthorInput() ports.CreateAuthorInput {
	return ports.CreateAuthorInput{
		Name:        "Johann",
		Surname:     "Goethe",
		Nationality: "German",
		Biography:   "A writer and statesman whose body of work includes plays, poetry and novels that shaped European literature for generations to come.",
	}
}

func TestAuthorService_Create_Success(t *testing.T) {
	users := newStubUserRepo()
	user := registeredUser(t, users)
	repo := &stubAuthorRepo{}
	svc := NewAuthorService(repo, users, zerolog.Nop())

	reply, err := svc.Create(context.Background(), validAuthorInput(), user.ID)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if reply.Name != "Johann" || reply.Nationality != "German" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if reply.CreatorID != user.ID.Hex() {
		t.Fatalf("expected creatorId %s, got %s", user.ID.Hex(), reply.CreatorID)
	}
}

func TestAuthorService_Create_UnknownUser(t *testing.T) {
	users := newStubUserRepo()
	repo := &stubAuthorRepo{}
	svc := NewAuthorService(repo, users, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validAuthorInput(), primitive.NewObjectID()); !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected invalid_user, got %v", err)
	}
	if len(repo.authors) != 0 {
		t.Fatalf("no author should be persisted")
	}
}

func TestAuthorService_Replace_PartialUpdate(t *testing.T) {
	users := newStubUserRepo()
	user := registeredUser(t, users)
	repo := &stubAuthorRepo{}
	svc := NewAuthorService(repo, users, zerolog.Nop())

	created, err := svc.Create(context.Background(), validAuthorInput(), user.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, _ := primitive.ObjectIDFromHex(created.ID)

	newName := "Wolfgang"
	reply, err := svc.Replace(context.Background(), ports.ReplaceAuthorInput{ID: id, Name: &newName}, user.ID)
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if reply.Name != "Wolfgang" {
		t.Fatalf("name not replaced: %+v", reply)
	}
	if reply.Surname != "Goethe" || reply.Nationality != "German" {
		t.Fatalf("unspecified fields must keep prior values: %+v", reply)
	}
}

func TestAuthorService_Replace_WrongOwner(t *testing.T) {
	users := newStubUserRepo()
	user := registeredUser(t, users)
	repo := &stubAuthorRepo{}
	svc := NewAuthorService(repo, users, zerolog.Nop())

	created, err := svc.Create(context.Background(), validAuthorInput(), user.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, _ := primitive.ObjectIDFromHex(created.ID)

	name := "Intruder"
	if _, err := svc.Replace(context.Background(), ports.ReplaceAuthorInput{ID: id, Name: &name}, primitive.NewObjectID()); !errors.Is(err, domain.ErrInvalidUser) {
		t.Fatalf("expected invalid_user, got %v", err)
	}
}

func TestAuthorService_Replace_NotFound(t *testing.T) {
	users := newStubUserRepo()
	user := registeredUser(t, users)
	svc := NewAuthorService(&stubAuthorRepo{}, users, zerolog.Nop())

	name := "Ghost"
	if _, err := svc.Replace(context.Background(), ports.ReplaceAuthorInput{ID: primitive.NewObjectID(), Name: &name}, user.ID); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("expected author_not_found, got %v", err)
	}
}

func TestAuthorService_Remove_ReturnsSnapshot(t *testing.T) {
	users := newStubUserRepo()
	user := registeredUser(t, users)
	repo := &stubAuthorRepo{}
	svc := NewAuthorService(repo, users, zerolog.Nop())

	created, err := svc.Create(context.Background(), validAuthorInput(), user.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, _ := primitive.ObjectIDFromHex(created.ID)

	reply, err := svc.Remove(context.Background(), id, user.ID)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if reply.ID != created.ID || reply.Name != "Johann" {
		t.Fatalf("expected pre-deletion snapshot, got %+v", reply)
	}
	if len(repo.authors) != 0 {
		t.Fatalf("author should be deleted")
	}

	if _, err := svc.Remove(context.Background(), id, user.ID); !errors.Is(err, domain.ErrAuthorNotFound) {
		t.Fatalf("second remove should report author_not_found, got %v", err)
	}
}

func TestAuthorService_FindAll_Pagination(t *testing.T) {
	users := newStubUserRepo()
	user := registeredUser(t, users)
	repo := &stubAuthorRepo{}
	svc := NewAuthorService(repo, users, zerolog.Nop())

	input := validAuthorInput()
	for i := 0; i < 5; i++ {
		if _, err := svc.Create(context.Background(), input, user.ID); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page1, err := svc.FindAll(context.Background(), ports.AuthorFilter{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("FindAll page 1: %v", err)
	}
	if len(page1) != 2 {
		t.Fatalf("expected 2 authors on page 1, got %d", len(page1))
	}

	page3, err := svc.FindAll(context.Background(), ports.AuthorFilter{Page: 3, Limit: 2})
	if err != nil {
		t.Fatalf("FindAll page 3: %v", err)
	}
	if len(page3) != 1 {
		t.Fatalf("expected 1 author on page 3, got %d", len(page3))
	}

	beyond, err := svc.FindAll(context.Background(), ports.AuthorFilter{Page: 10, Limit: 2})
	if err != nil {
		t.Fatalf("page beyond the data must not error: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty page, got %d", len(beyond))
	}
}
