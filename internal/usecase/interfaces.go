package usecase

import (
	"context"
	"time"

	"github.com/retailbank/fundsmove/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Save(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error)
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	// ListByCustomerAndDateRange returns all transactions initiated by the
	// customer with CreatedAt inside [from, to]. Used for daily e-transfer
	// usage calculation.
	ListByCustomerAndDateRange(ctx context.Context, customerID string, from, to time.Time) ([]*domain.Transaction, error)
}

// RecipientRepository defines data access for saved recipients.
type RecipientRepository interface {
	Save(ctx context.Context, recipient *domain.Recipient) error
	GetByID(ctx context.Context, id string) (*domain.Recipient, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Recipient, error)
	Delete(ctx context.Context, id string) error
}

// ETransferRepository defines data access for e-transfer records.
type ETransferRepository interface {
	Save(ctx context.Context, et *domain.ETransfer) error
	GetByID(ctx context.Context, id string) (*domain.ETransfer, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.ETransfer, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*domain.ETransfer, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
