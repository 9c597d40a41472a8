package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/retailbank/fundsmove/internal/domain"
	"github.com/retailbank/fundsmove/internal/usecase"
	"github.com/retailbank/fundsmove/internal/usecase/mocks"
)

func newRecipientUseCase(t *testing.T) (*usecase.RecipientUseCase, *mocks.MockRecipientRepository) {
	t.Helper()

	recipientRepo := mocks.NewMockRecipientRepository()
	uc := usecase.NewRecipientUseCase(recipientRepo, mocks.NewMockIDGenerator(), zerolog.Nop())

	return uc, recipientRepo
}

func TestRecipientUseCase_AddRecipient(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a valid recipient", func(t *testing.T) {
		uc, recipientRepo := newRecipientUseCase(t)

		recipient, err := uc.AddRecipient(ctx, usecase.AddRecipientInput{
			OwnerID: "cust-1",
			Name:    "Jordan Reyes",
			Email:   "jordan@example.com",
			Phone:   "+1 416 555 0100",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := recipientRepo.GetByID(ctx, recipient.ID); err != nil {
			t.Errorf("recipient not persisted: %v", err)
		}
	})

	t.Run("invalid contact details are refused", func(t *testing.T) {
		uc, recipientRepo := newRecipientUseCase(t)

		_, err := uc.AddRecipient(ctx, usecase.AddRecipientInput{
			OwnerID: "cust-1",
			Name:    "Jordan Reyes",
			Email:   "not-an-email",
		})
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}

		recipients, err := recipientRepo.ListByOwner(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(recipients) != 0 {
			t.Error("nothing may be persisted on a refused add")
		}
	})
}

func TestRecipientUseCase_UpdateRecipient(t *testing.T) {
	ctx := context.Background()
	uc, _ := newRecipientUseCase(t)

	recipient, err := uc.AddRecipient(ctx, usecase.AddRecipientInput{
		OwnerID: "cust-1",
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("owner can update", func(t *testing.T) {
		updated, err := uc.UpdateRecipient(ctx, "cust-1", recipient.ID, "Jordan R.", "jr@example.com", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated.Email != "jr@example.com" {
			t.Errorf("update not applied, got %q", updated.Email)
		}
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		_, err := uc.UpdateRecipient(ctx, "cust-2", recipient.ID, "X", "x@example.com", "")
		if !errors.Is(err, domain.ErrNotRecipientOwner) {
			t.Errorf("expected ErrNotRecipientOwner, got %v", err)
		}
	})

	t.Run("unknown recipient", func(t *testing.T) {
		_, err := uc.UpdateRecipient(ctx, "cust-1", "rcpt-404", "X", "x@example.com", "")
		if !errors.Is(err, domain.ErrRecipientNotFound) {
			t.Errorf("expected ErrRecipientNotFound, got %v", err)
		}
	})
}

func TestRecipientUseCase_ListRecipients(t *testing.T) {
	ctx := context.Background()
	uc, _ := newRecipientUseCase(t)

	for _, owner := range []string{"cust-1", "cust-1", "cust-2"} {
		if _, err := uc.AddRecipient(ctx, usecase.AddRecipientInput{
			OwnerID: owner,
			Name:    "Jordan Reyes",
			Email:   "jordan@example.com",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	recipients, err := uc.ListRecipients(ctx, "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recipients) != 2 {
		t.Errorf("expected 2 recipients for cust-1, got %d", len(recipients))
	}

	if _, err := uc.ListRecipients(ctx, ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRecipientUseCase_RemoveRecipient(t *testing.T) {
	ctx := context.Background()
	uc, recipientRepo := newRecipientUseCase(t)

	recipient, err := uc.AddRecipient(ctx, usecase.AddRecipientInput{
		OwnerID: "cust-1",
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("non-owner cannot remove", func(t *testing.T) {
		if err := uc.RemoveRecipient(ctx, "cust-2", recipient.ID); !errors.Is(err, domain.ErrNotRecipientOwner) {
			t.Fatalf("expected ErrNotRecipientOwner, got %v", err)
		}

		if _, err := recipientRepo.GetByID(ctx, recipient.ID); err != nil {
			t.Error("recipient must survive a refused removal")
		}
	})

	t.Run("owner removes", func(t *testing.T) {
		if err := uc.RemoveRecipient(ctx, "cust-1", recipient.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := recipientRepo.GetByID(ctx, recipient.ID); !errors.Is(err, domain.ErrRecipientNotFound) {
			t.Errorf("expected ErrRecipientNotFound after removal, got %v", err)
		}
	})
}
