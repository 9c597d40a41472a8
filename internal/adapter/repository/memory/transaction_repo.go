package memory

import (
	"context"
	"sync"
	"time"

	"github.com/retailbank/fundsmove/internal/domain"
)

// TransactionRepository is an in-memory transaction store.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

// Save stores the transaction, overwriting any previous entry with the same ID.
func (r *TransactionRepository) Save(_ context.Context, tx *domain.Transaction) error {
	if tx == nil {
		return domain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions[tx.ID] = tx

	return nil
}

// GetByID returns the transaction with the given ID.
func (r *TransactionRepository) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	return tx, nil
}

// ListByAccount returns all transactions touching the account as source or
// destination.
func (r *TransactionRepository) ListByAccount(_ context.Context, accountID string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var txs []*domain.Transaction
	for _, tx := range r.transactions {
		if accountID != "" && (tx.SourceAccountID == accountID || tx.DestinationAccountID == accountID) {
			txs = append(txs, tx)
		}
	}

	return txs, nil
}

// ListByCustomerAndDateRange returns all transactions initiated by the
// customer with CreatedAt inside [from, to].
func (r *TransactionRepository) ListByCustomerAndDateRange(_ context.Context, customerID string, from, to time.Time) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var txs []*domain.Transaction
	for _, tx := range r.transactions {
		if tx.CustomerID != customerID {
			continue
		}

		if tx.CreatedAt.Before(from) || tx.CreatedAt.After(to) {
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}
