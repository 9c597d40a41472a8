// Package memory provides map-backed reference implementations of the
// repository ports, keyed by entity ID with overwrite-on-save semantics.
package memory

import (
	"context"
	"sync"

	"github.com/retailbank/fundsmove/internal/domain"
)

// AccountRepository is an in-memory account store.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Save stores the account, overwriting any previous entry with the same ID.
func (r *AccountRepository) Save(_ context.Context, account *domain.Account) error {
	if account == nil {
		return domain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID] = account

	return nil
}

// GetByID returns the account with the given ID.
func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}

// ListByCustomer returns all accounts owned by the customer.
func (r *AccountRepository) ListByCustomer(_ context.Context, customerID string) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var accounts []*domain.Account
	for _, account := range r.accounts {
		if account.IsOwnedBy(customerID) {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}
