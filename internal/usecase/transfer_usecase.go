package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/retailbank/fundsmove/internal/domain"
	"github.com/retailbank/fundsmove/internal/infrastructure/metrics"
)

// TransferUseCase orchestrates same-customer account-to-account transfers.
//
// Precondition violations (blank IDs, non-positive amount, unknown or
// non-owned accounts) are returned as errors before any mutation. A refused
// debit is a business failure: it is recorded as a persisted FAILED
// transaction and returned without error so callers branch on status.
type TransferUseCase struct {
	accountRepo AccountRepository
	txRepo      TransactionRepository
	idGen       IDGenerator
	locker      *AccountLocker
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	accountRepo AccountRepository,
	txRepo TransactionRepository,
	idGen IDGenerator,
	locker *AccountLocker,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		idGen:       idGen,
		locker:      locker,
		logger:      logger,
		metrics:     m,
	}
}

// TransferInput represents input for a funds transfer.
type TransferInput struct {
	CustomerID           string
	SourceAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Description          string
}

// Transfer moves amount between two accounts owned by the same customer.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.Transaction, error) {
	if err := domain.ValidateID("customer ID", input.CustomerID); err != nil {
		return nil, err
	}

	if err := domain.ValidateID("source account ID", input.SourceAccountID); err != nil {
		return nil, err
	}

	if err := domain.ValidateID("destination account ID", input.DestinationAccountID); err != nil {
		return nil, err
	}

	if input.SourceAccountID == input.DestinationAccountID {
		return nil, domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	start := time.Now()

	unlock := uc.locker.Lock(input.SourceAccountID, input.DestinationAccountID)
	defer unlock()

	source, err := uc.accountRepo.GetByID(ctx, input.SourceAccountID)
	if err != nil {
		return nil, err
	}

	destination, err := uc.accountRepo.GetByID(ctx, input.DestinationAccountID)
	if err != nil {
		return nil, err
	}

	if !source.IsOwnedBy(input.CustomerID) || !destination.IsOwnedBy(input.CustomerID) {
		return nil, domain.ErrNotAccountOwner
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = fmt.Sprintf("Transfer funds from %s to %s", source.Kind, destination.Kind)
	}

	canDebit, err := source.CanDebit(input.Amount)
	if err != nil {
		return nil, err
	}

	if !canDebit {
		// Record the refused attempt for audit without touching any balance.
		return uc.recordFailedTransfer(ctx, input, description, debitRefusedReason)
	}

	tx, err := domain.NewTransaction(
		uc.idGen.Generate(),
		input.CustomerID,
		input.SourceAccountID,
		input.DestinationAccountID,
		input.Amount,
		description,
	)
	if err != nil {
		return nil, err
	}

	// Debit before credit: a debit failure here (the earlier check was
	// invalidated) leaves the destination untouched.
	if err := source.Debit(input.Amount); err != nil {
		if markErr := tx.MarkFailed(err.Error()); markErr != nil {
			return nil, markErr
		}

		if saveErr := uc.txRepo.Save(ctx, tx); saveErr != nil {
			return nil, saveErr
		}

		uc.observeFailed(tx)

		return tx, nil
	}

	if err := destination.Credit(input.Amount); err != nil {
		// Credit cannot fail once the amount is validated; undo the debit so
		// the ledger stays balanced if it ever does.
		source.Balance = source.Balance.Add(input.Amount)

		if markErr := tx.MarkFailed(err.Error()); markErr != nil {
			return nil, markErr
		}

		if saveErr := uc.txRepo.Save(ctx, tx); saveErr != nil {
			return nil, saveErr
		}

		uc.observeFailed(tx)

		return tx, nil
	}

	source.AddTransaction(tx)
	destination.AddTransaction(tx)

	if err := tx.MarkCompleted(); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Save(ctx, source); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Save(ctx, destination); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("transaction_id", tx.ID).
		Str("source_account_id", source.ID).
		Str("destination_account_id", destination.ID).
		Str("amount", input.Amount.String()).
		Msg("transfer completed")

	if uc.metrics != nil {
		uc.metrics.TransfersCompleted.Inc()
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	return tx, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransferUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, id)
}

func (uc *TransferUseCase) recordFailedTransfer(ctx context.Context, input TransferInput, description, reason string) (*domain.Transaction, error) {
	tx, err := domain.NewTransaction(
		uc.idGen.Generate(),
		input.CustomerID,
		input.SourceAccountID,
		input.DestinationAccountID,
		input.Amount,
		description,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.MarkFailed(reason); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	uc.observeFailed(tx)

	return tx, nil
}

func (uc *TransferUseCase) observeFailed(tx *domain.Transaction) {
	uc.logger.Warn().
		Str("transaction_id", tx.ID).
		Str("reason", tx.FailureReason).
		Msg("transfer failed")

	if uc.metrics != nil {
		uc.metrics.TransfersFailed.WithLabelValues(tx.FailureReason).Inc()
	}
}
