package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/retailbank/fundsmove/internal/domain"
	"github.com/retailbank/fundsmove/internal/infrastructure/metrics"
)

// ETransferLimits are the injectable caps on e-transfer amounts.
type ETransferLimits struct {
	// PerTransactionMax is the maximum amount of a single e-transfer.
	PerTransactionMax decimal.Decimal

	// DailyLimit is the maximum total a customer can send per calendar day.
	DailyLimit decimal.Decimal
}

// ETransferUseCase orchestrates transfers from a customer account to one of
// their saved recipients. There is no destination account: money leaves the
// ledger, so the movement is a single debit.
type ETransferUseCase struct {
	accountRepo   AccountRepository
	recipientRepo RecipientRepository
	txRepo        TransactionRepository
	etRepo        ETransferRepository
	idGen         IDGenerator
	locker        *AccountLocker
	limits        ETransferLimits
	logger        zerolog.Logger
	metrics       *metrics.Metrics
}

// NewETransferUseCase creates a new ETransferUseCase.
func NewETransferUseCase(
	accountRepo AccountRepository,
	recipientRepo RecipientRepository,
	txRepo TransactionRepository,
	etRepo ETransferRepository,
	idGen IDGenerator,
	locker *AccountLocker,
	limits ETransferLimits,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *ETransferUseCase {
	return &ETransferUseCase{
		accountRepo:   accountRepo,
		recipientRepo: recipientRepo,
		txRepo:        txRepo,
		etRepo:        etRepo,
		idGen:         idGen,
		locker:        locker,
		limits:        limits,
		logger:        logger,
		metrics:       m,
	}
}

// SendInput represents input for sending an e-transfer.
type SendInput struct {
	CustomerID      string
	SourceAccountID string
	RecipientID     string
	Amount          decimal.Decimal
	Message         string
}

// Send debits the source account and records the e-transfer to the recipient.
// Precondition and limit violations return an error before any mutation; a
// refused debit returns a persisted FAILED record without error.
func (uc *ETransferUseCase) Send(ctx context.Context, input SendInput) (*domain.ETransfer, error) {
	if err := domain.ValidateID("customer ID", input.CustomerID); err != nil {
		return nil, err
	}

	if err := domain.ValidateID("source account ID", input.SourceAccountID); err != nil {
		return nil, err
	}

	if err := domain.ValidateID("recipient ID", input.RecipientID); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := uc.enforceAmountLimits(ctx, input.CustomerID, input.Amount); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(input.SourceAccountID)
	defer unlock()

	source, err := uc.accountRepo.GetByID(ctx, input.SourceAccountID)
	if err != nil {
		return nil, err
	}

	recipient, err := uc.recipientRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	if !source.IsOwnedBy(input.CustomerID) {
		return nil, domain.ErrNotAccountOwner
	}

	if !recipient.IsOwnedBy(input.CustomerID) {
		return nil, domain.ErrNotRecipientOwner
	}

	description := "E-Transfer to " + recipient.Name

	canDebit, err := source.CanDebit(input.Amount)
	if err != nil {
		return nil, err
	}

	if !canDebit {
		// Record the refused attempt for audit without touching the balance.
		return uc.recordFailedETransfer(ctx, input, recipient, description, debitRefusedReason)
	}

	tx, err := domain.NewTransaction(
		uc.idGen.Generate(),
		input.CustomerID,
		input.SourceAccountID,
		"", // no destination account: the defining shape of an e-transfer
		input.Amount,
		description,
	)
	if err != nil {
		return nil, err
	}

	et, err := domain.NewETransfer(uc.idGen.Generate(), tx, recipient, input.Message)
	if err != nil {
		return nil, err
	}

	if err := source.Debit(input.Amount); err != nil {
		// The earlier check was invalidated before the mutating step. Record
		// the failure on both records and persist them.
		if markErr := tx.MarkFailed(err.Error()); markErr != nil {
			return nil, markErr
		}

		if markErr := et.MarkFailed(err.Error()); markErr != nil {
			return nil, markErr
		}

		if saveErr := uc.txRepo.Save(ctx, tx); saveErr != nil {
			return nil, saveErr
		}

		if saveErr := uc.etRepo.Save(ctx, et); saveErr != nil {
			return nil, saveErr
		}

		uc.observeFailed(et)

		return et, nil
	}

	source.AddTransaction(tx)

	if err := tx.MarkCompleted(); err != nil {
		return nil, err
	}

	if err := et.MarkSent(); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Save(ctx, source); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	if err := uc.etRepo.Save(ctx, et); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("etransfer_id", et.ID).
		Str("source_account_id", source.ID).
		Str("recipient_id", recipient.ID).
		Str("amount", input.Amount.String()).
		Msg("e-transfer sent")

	if uc.metrics != nil {
		uc.metrics.ETransfersSent.Inc()
		uc.metrics.ETransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return et, nil
}

// GetETransfer retrieves an e-transfer record by ID.
func (uc *ETransferUseCase) GetETransfer(ctx context.Context, id string) (*domain.ETransfer, error) {
	return uc.etRepo.GetByID(ctx, id)
}

// RemainingDailyLimit returns how much e-transfer amount the customer can
// still send today, floored at zero. Exposed for client display; the
// enforcement path uses the same calculation.
func (uc *ETransferUseCase) RemainingDailyLimit(ctx context.Context, customerID string) (decimal.Decimal, error) {
	if err := domain.ValidateID("customer ID", customerID); err != nil {
		return decimal.Zero, err
	}

	used, err := uc.usedToday(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	remaining := uc.limits.DailyLimit.Sub(used)
	if remaining.IsNegative() {
		return decimal.Zero, nil
	}

	return remaining, nil
}

func (uc *ETransferUseCase) enforceAmountLimits(ctx context.Context, customerID string, amount decimal.Decimal) error {
	if amount.GreaterThan(uc.limits.PerTransactionMax) {
		return fmt.Errorf("%w: amount exceeds the maximum allowed per e-transfer (%s)",
			domain.ErrLimitExceeded, uc.limits.PerTransactionMax)
	}

	remaining, err := uc.RemainingDailyLimit(ctx, customerID)
	if err != nil {
		return err
	}

	if amount.GreaterThan(remaining) {
		return fmt.Errorf("%w: amount exceeds the remaining daily e-transfer limit (remaining today: %s)",
			domain.ErrLimitExceeded, remaining)
	}

	return nil
}

// usedToday sums today's COMPLETED outgoing e-transfers: transactions with a
// source account owned by the customer and no destination account. PENDING
// and FAILED transactions never count.
func (uc *ETransferUseCase) usedToday(ctx context.Context, customerID string) (decimal.Decimal, error) {
	now := time.Now()
	year, month, day := now.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	txs, err := uc.txRepo.ListByCustomerAndDateRange(ctx, customerID, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero

	for _, tx := range txs {
		if tx.Status != domain.TransactionCompleted || !tx.IsOutgoingETransfer() {
			continue
		}

		source, err := uc.accountRepo.GetByID(ctx, tx.SourceAccountID)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				continue
			}

			return decimal.Zero, err
		}

		if !source.IsOwnedBy(customerID) {
			continue
		}

		total = total.Add(tx.Amount)
	}

	return total, nil
}

func (uc *ETransferUseCase) recordFailedETransfer(ctx context.Context, input SendInput, recipient *domain.Recipient, description, reason string) (*domain.ETransfer, error) {
	tx, err := domain.NewTransaction(
		uc.idGen.Generate(),
		input.CustomerID,
		input.SourceAccountID,
		"",
		input.Amount,
		description,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.MarkFailed(reason); err != nil {
		return nil, err
	}

	et, err := domain.NewETransfer(uc.idGen.Generate(), tx, recipient, input.Message)
	if err != nil {
		return nil, err
	}

	if err := et.MarkFailed(reason); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Save(ctx, tx); err != nil {
		return nil, err
	}

	if err := uc.etRepo.Save(ctx, et); err != nil {
		return nil, err
	}

	uc.observeFailed(et)

	return et, nil
}

func (uc *ETransferUseCase) observeFailed(et *domain.ETransfer) {
	uc.logger.Warn().
		Str("etransfer_id", et.ID).
		Str("reason", et.FailureReason).
		Msg("e-transfer failed")

	if uc.metrics != nil {
		uc.metrics.ETransfersFailed.WithLabelValues(et.FailureReason).Inc()
	}
}
