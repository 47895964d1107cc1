package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
	testhelpers "github.com/polkiloo/folioorder/internal/test"
)

func TestOrderSubmitRequiresContact(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	cases := []struct {
		name     string
		snapshot model.OrderSnapshot
	}{
		{"empty", model.OrderSnapshot{}},
		{"name only", model.OrderSnapshot{Name: "Alice"}},
		{"whitespace email", model.OrderSnapshot{Name: "Alice", Email: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Submit(context.Background(), tc.snapshot); !errors.Is(err, domainErrors.ErrMissingContact) {
				t.Fatalf("expected ErrMissingContact, got %v", err)
			}
		})
	}

	if len(repo.Records) != 0 {
		t.Fatalf("expected no records created, got %d", len(repo.Records))
	}
}

func TestOrderSubmitAssignsUniqueIDs(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	snapshot := model.OrderSnapshot{Name: "Alice", Email: "alice@example.com"}
	first, err := uc.Submit(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Submit(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct order ids, got %q twice", first.ID)
	}
	if _, err := uuid.Parse(first.ID); err != nil {
		t.Fatalf("expected UUID order id, got %q", first.ID)
	}
}

func TestOrderSubmitPropagatesPersistenceError(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	repo.Err = errors.New("disk full")
	uc := NewOrderUseCase(repo)

	_, err := uc.Submit(context.Background(), model.OrderSnapshot{Name: "Alice", Email: "a@b.c"})
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("expected persistence error surfaced, got %v", err)
	}
}

func TestOrderGet(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	record, err := uc.Submit(context.Background(), model.OrderSnapshot{Name: "Alice", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.Get(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != record.ID {
		t.Fatalf("expected record %q, got %q", record.ID, got.ID)
	}

	if _, err := uc.Get(context.Background(), "not-a-real-id"); !errors.Is(err, domainErrors.ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}

	if _, err := uc.Get(context.Background(), uuid.NewString()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
