package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/retailbank/fundsmove/internal/domain"
	"github.com/retailbank/fundsmove/internal/usecase"
	"github.com/retailbank/fundsmove/internal/usecase/mocks"
)

type etransferFixture struct {
	accountRepo   *mocks.MockAccountRepository
	recipientRepo *mocks.MockRecipientRepository
	txRepo        *mocks.MockTransactionRepository
	etRepo        *mocks.MockETransferRepository
	uc            *usecase.ETransferUseCase
}

func newETransferUseCaseFixture(t *testing.T) *etransferFixture {
	t.Helper()

	f := &etransferFixture{
		accountRepo:   mocks.NewMockAccountRepository(),
		recipientRepo: mocks.NewMockRecipientRepository(),
		txRepo:        mocks.NewMockTransactionRepository(),
		etRepo:        mocks.NewMockETransferRepository(),
	}

	f.uc = usecase.NewETransferUseCase(
		f.accountRepo,
		f.recipientRepo,
		f.txRepo,
		f.etRepo,
		mocks.NewMockIDGenerator(),
		usecase.NewAccountLocker(),
		usecase.ETransferLimits{
			PerTransactionMax: decimal.RequireFromString("5000.00"),
			DailyLimit:        decimal.RequireFromString("10000.00"),
		},
		zerolog.Nop(),
		nil,
	)

	return f
}

func (f *etransferFixture) seedAccount(t *testing.T, id, customerID string, balance int64) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(id, customerID, domain.AccountKindChecking, decimal.NewFromInt(balance), domain.DefaultAccountPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.accountRepo.Save(context.Background(), account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return account
}

func (f *etransferFixture) seedRecipient(t *testing.T, id, ownerID, name string) *domain.Recipient {
	t.Helper()

	recipient, err := domain.NewRecipient(id, ownerID, name, "recipient@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.recipientRepo.Save(context.Background(), recipient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return recipient
}

func (f *etransferFixture) send(t *testing.T, amount int64) *domain.ETransfer {
	t.Helper()

	et, err := f.uc.Send(context.Background(), usecase.SendInput{
		CustomerID:      "cust-1",
		SourceAccountID: "acc-1",
		RecipientID:     "rcpt-1",
		Amount:          decimal.NewFromInt(amount),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return et
}

func TestETransferUseCase_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("debits the source and records a sent e-transfer", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		source := f.seedAccount(t, "acc-1", "cust-1", 1000)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		et, err := f.uc.Send(ctx, usecase.SendInput{
			CustomerID:      "cust-1",
			SourceAccountID: "acc-1",
			RecipientID:     "rcpt-1",
			Amount:          decimal.NewFromInt(150),
			Message:         "lunch money",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !et.IsSent() {
			t.Fatalf("expected SENT, got %s", et.Status)
		}

		if !source.Balance.Equal(decimal.NewFromInt(850)) {
			t.Errorf("expected balance 850, got %s", source.Balance)
		}

		tx := et.Transaction
		if tx.Status != domain.TransactionCompleted {
			t.Errorf("expected COMPLETED transaction, got %s", tx.Status)
		}

		if tx.DestinationAccountID != "" {
			t.Errorf("an e-transfer has no destination account, got %q", tx.DestinationAccountID)
		}

		if tx.Description != "E-Transfer to Jordan Reyes" {
			t.Errorf("unexpected description: %q", tx.Description)
		}

		if et.Message != "lunch money" {
			t.Errorf("unexpected message: %q", et.Message)
		}

		if _, err := f.etRepo.GetByID(ctx, et.ID); err != nil {
			t.Errorf("e-transfer not persisted: %v", err)
		}

		if _, err := f.txRepo.GetByID(ctx, tx.ID); err != nil {
			t.Errorf("transaction not persisted: %v", err)
		}

		if len(source.Transactions()) != 1 {
			t.Error("expected the transaction in the source history")
		}
	})

	t.Run("amount over the per-transaction cap is refused up front", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		source := f.seedAccount(t, "acc-1", "cust-1", 100000)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		_, err := f.uc.Send(ctx, usecase.SendInput{
			CustomerID:      "cust-1",
			SourceAccountID: "acc-1",
			RecipientID:     "rcpt-1",
			Amount:          decimal.RequireFromString("5000.01"),
		})
		if !errors.Is(err, domain.ErrLimitExceeded) {
			t.Fatalf("expected ErrLimitExceeded, got %v", err)
		}

		if !source.Balance.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("balance must be untouched, got %s", source.Balance)
		}

		if len(f.txRepo.All()) != 0 || len(f.etRepo.All()) != 0 {
			t.Error("nothing may be persisted on a limit violation")
		}
	})

	t.Run("amount at the per-transaction cap is allowed", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-1", 100000)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		et := f.send(t, 5000)
		if !et.IsSent() {
			t.Errorf("expected SENT at the exact cap, got %s", et.Status)
		}
	})

	t.Run("daily limit counts only sent e-transfers", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-1", 100000)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		remaining, err := f.uc.RemainingDailyLimit(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !remaining.Equal(decimal.RequireFromString("10000.00")) {
			t.Fatalf("expected full limit, got %s", remaining)
		}

		f.send(t, 4000)

		remaining, err = f.uc.RemainingDailyLimit(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !remaining.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected remaining 6000 after sending 4000, got %s", remaining)
		}

		f.send(t, 4000)

		// 8000 used today; the next 4000 busts the daily limit.
		_, err = f.uc.Send(ctx, usecase.SendInput{
			CustomerID:      "cust-1",
			SourceAccountID: "acc-1",
			RecipientID:     "rcpt-1",
			Amount:          decimal.NewFromInt(4000),
		})
		if !errors.Is(err, domain.ErrLimitExceeded) {
			t.Fatalf("expected ErrLimitExceeded, got %v", err)
		}

		// 2000 still fits exactly.
		et := f.send(t, 2000)
		if !et.IsSent() {
			t.Errorf("expected SENT for the exact remaining amount, got %s", et.Status)
		}

		remaining, err = f.uc.RemainingDailyLimit(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !remaining.Equal(decimal.Zero) {
			t.Errorf("expected remaining 0, got %s", remaining)
		}
	})

	t.Run("failed e-transfers do not consume the daily limit", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-1", 50)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		et := f.send(t, 100)
		if et.Status != domain.ETransferFailed {
			t.Fatalf("expected FAILED with balance 50, got %s", et.Status)
		}

		remaining, err := f.uc.RemainingDailyLimit(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !remaining.Equal(decimal.RequireFromString("10000.00")) {
			t.Errorf("a failed send must not consume the limit, got %s", remaining)
		}
	})

	t.Run("insufficient funds persists failed records without error", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		source := f.seedAccount(t, "acc-1", "cust-1", 100)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		et := f.send(t, 150)

		if et.Status != domain.ETransferFailed {
			t.Fatalf("expected FAILED, got %s", et.Status)
		}

		if et.Transaction.Status != domain.TransactionFailed {
			t.Errorf("expected FAILED transaction, got %s", et.Transaction.Status)
		}

		if et.FailureReason == "" {
			t.Error("expected a failure reason")
		}

		if !source.Balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("balance must be untouched, got %s", source.Balance)
		}

		if _, err := f.etRepo.GetByID(ctx, et.ID); err != nil {
			t.Errorf("failed e-transfer must be persisted: %v", err)
		}

		if _, err := f.txRepo.GetByID(ctx, et.Transaction.ID); err != nil {
			t.Errorf("failed transaction must be persisted: %v", err)
		}
	})

	t.Run("recipient owned by another customer is refused", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-1", 1000)
		f.seedRecipient(t, "rcpt-1", "cust-2", "Jordan Reyes")

		_, err := f.uc.Send(ctx, usecase.SendInput{
			CustomerID:      "cust-1",
			SourceAccountID: "acc-1",
			RecipientID:     "rcpt-1",
			Amount:          decimal.NewFromInt(10),
		})
		if !errors.Is(err, domain.ErrNotRecipientOwner) {
			t.Fatalf("expected ErrNotRecipientOwner, got %v", err)
		}

		if len(f.txRepo.All()) != 0 || len(f.etRepo.All()) != 0 {
			t.Error("nothing may be persisted on an ownership violation")
		}
	})

	t.Run("account owned by another customer is refused", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-2", 1000)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		_, err := f.uc.Send(ctx, usecase.SendInput{
			CustomerID:      "cust-1",
			SourceAccountID: "acc-1",
			RecipientID:     "rcpt-1",
			Amount:          decimal.NewFromInt(10),
		})
		if !errors.Is(err, domain.ErrNotAccountOwner) {
			t.Fatalf("expected ErrNotAccountOwner, got %v", err)
		}
	})

	t.Run("precondition violations", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-1", 1000)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		tests := []struct {
			name  string
			input usecase.SendInput
			want  error
		}{
			{
				name: "blank customer ID",
				input: usecase.SendInput{
					SourceAccountID: "acc-1",
					RecipientID:     "rcpt-1",
					Amount:          decimal.NewFromInt(10),
				},
				want: domain.ErrInvalidArgument,
			},
			{
				name: "blank recipient ID",
				input: usecase.SendInput{
					CustomerID:      "cust-1",
					SourceAccountID: "acc-1",
					Amount:          decimal.NewFromInt(10),
				},
				want: domain.ErrInvalidArgument,
			},
			{
				name: "non-positive amount",
				input: usecase.SendInput{
					CustomerID:      "cust-1",
					SourceAccountID: "acc-1",
					RecipientID:     "rcpt-1",
					Amount:          decimal.NewFromInt(-5),
				},
				want: domain.ErrInvalidAmount,
			},
			{
				name: "unknown recipient",
				input: usecase.SendInput{
					CustomerID:      "cust-1",
					SourceAccountID: "acc-1",
					RecipientID:     "rcpt-404",
					Amount:          decimal.NewFromInt(10),
				},
				want: domain.ErrRecipientNotFound,
			},
			{
				name: "unknown source account",
				input: usecase.SendInput{
					CustomerID:      "cust-1",
					SourceAccountID: "acc-404",
					RecipientID:     "rcpt-1",
					Amount:          decimal.NewFromInt(10),
				},
				want: domain.ErrAccountNotFound,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.uc.Send(ctx, tt.input)
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
	})
}

func TestETransferUseCase_RemainingDailyLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("ignores account-to-account transfers", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-1", "cust-1", 100000)
		f.seedAccount(t, "acc-2", "cust-1", 0)
		f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

		transfer := usecase.NewTransferUseCase(
			f.accountRepo,
			f.txRepo,
			mocks.NewMockIDGenerator(),
			usecase.NewAccountLocker(),
			zerolog.Nop(),
			nil,
		)

		if _, err := transfer.Transfer(ctx, usecase.TransferInput{
			CustomerID:           "cust-1",
			SourceAccountID:      "acc-1",
			DestinationAccountID: "acc-2",
			Amount:               decimal.NewFromInt(9000),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		remaining, err := f.uc.RemainingDailyLimit(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !remaining.Equal(decimal.RequireFromString("10000.00")) {
			t.Errorf("internal transfers must not consume the limit, got %s", remaining)
		}
	})

	t.Run("ignores e-transfers from accounts owned by someone else", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)
		f.seedAccount(t, "acc-other", "cust-2", 100000)

		// A transaction recorded under cust-1 whose source account belongs to
		// cust-2 never counts against cust-1's limit.
		tx, err := domain.NewTransaction("tx-x", "cust-1", "acc-other", "", decimal.NewFromInt(9999), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := tx.MarkCompleted(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.txRepo.Save(ctx, tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		remaining, err := f.uc.RemainingDailyLimit(ctx, "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !remaining.Equal(decimal.RequireFromString("10000.00")) {
			t.Errorf("expected full limit, got %s", remaining)
		}
	})

	t.Run("blank customer ID", func(t *testing.T) {
		f := newETransferUseCaseFixture(t)

		if _, err := f.uc.RemainingDailyLimit(ctx, " "); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestETransferUseCase_GetETransfer(t *testing.T) {
	ctx := context.Background()
	f := newETransferUseCaseFixture(t)
	f.seedAccount(t, "acc-1", "cust-1", 1000)
	f.seedRecipient(t, "rcpt-1", "cust-1", "Jordan Reyes")

	et := f.send(t, 100)

	got, err := f.uc.GetETransfer(ctx, et.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != et.ID {
		t.Errorf("expected %s, got %s", et.ID, got.ID)
	}

	if _, err := f.uc.GetETransfer(ctx, "et-404"); !errors.Is(err, domain.ErrETransferNotFound) {
		t.Errorf("expected ErrETransferNotFound, got %v", err)
	}
}
