package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/retailbank/fundsmove/internal/domain"
	"github.com/retailbank/fundsmove/internal/infrastructure/metrics"
)

// AccountUseCase handles account lifecycle and periodic maintenance.
type AccountUseCase struct {
	accountRepo AccountRepository
	txRepo      TransactionRepository
	idGen       IDGenerator
	locker      *AccountLocker
	policy      domain.AccountPolicy
	logger      zerolog.Logger
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	accountRepo AccountRepository,
	txRepo TransactionRepository,
	idGen IDGenerator,
	locker *AccountLocker,
	policy domain.AccountPolicy,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		txRepo:      txRepo,
		idGen:       idGen,
		locker:      locker,
		policy:      policy,
		logger:      logger,
		metrics:     m,
	}
}

// OpenAccountInput represents input for opening an account.
type OpenAccountInput struct {
	CustomerID     string
	Kind           domain.AccountKind
	OpeningBalance decimal.Decimal
}

// OpenAccount opens a checking or savings account with a non-negative
// opening balance.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	account, err := domain.NewAccount(uc.idGen.Generate(), input.CustomerID, input.Kind, input.OpeningBalance, uc.policy)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("account_id", account.ID).
		Str("customer_id", account.CustomerID).
		Str("kind", string(account.Kind)).
		Msg("account opened")

	if uc.metrics != nil {
		uc.metrics.AccountsOpened.WithLabelValues(string(account.Kind)).Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists the accounts owned by a customer.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, customerID string) ([]*domain.Account, error) {
	if err := domain.ValidateID("customer ID", customerID); err != nil {
		return nil, err
	}

	return uc.accountRepo.ListByCustomer(ctx, customerID)
}

// ListTransactions lists the transactions recorded against an account.
func (uc *AccountUseCase) ListTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if err := domain.ValidateID("account ID", accountID); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return uc.txRepo.ListByAccount(ctx, accountID)
}

// RunMonthlyMaintenance applies monthly interest and starts a new withdrawal
// period on every savings account of the customer. The schedule is owned by
// the caller; nothing here self-triggers.
func (uc *AccountUseCase) RunMonthlyMaintenance(ctx context.Context, customerID string) ([]*domain.Account, error) {
	if err := domain.ValidateID("customer ID", customerID); err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var maintained []*domain.Account

	for _, account := range accounts {
		if account.Kind != domain.AccountKindSavings {
			continue
		}

		unlock := uc.locker.Lock(account.ID)

		if err := account.ApplyMonthlyInterest(); err != nil {
			unlock()
			return nil, err
		}

		if err := account.ResetMonthlyWithdrawals(); err != nil {
			unlock()
			return nil, err
		}

		if err := uc.accountRepo.Save(ctx, account); err != nil {
			unlock()
			return nil, err
		}

		unlock()

		if uc.metrics != nil {
			uc.metrics.InterestApplied.Inc()
		}

		maintained = append(maintained, account)
	}

	uc.logger.Info().
		Str("customer_id", customerID).
		Int("savings_accounts", len(maintained)).
		Msg("monthly maintenance applied")

	return maintained, nil
}
