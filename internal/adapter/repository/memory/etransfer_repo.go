package memory

import (
	"context"
	"sync"

	"github.com/retailbank/fundsmove/internal/domain"
)

// ETransferRepository is an in-memory e-transfer store.
type ETransferRepository struct {
	mu         sync.RWMutex
	etransfers map[string]*domain.ETransfer
}

// NewETransferRepository creates an empty in-memory e-transfer repository.
func NewETransferRepository() *ETransferRepository {
	return &ETransferRepository{
		etransfers: make(map[string]*domain.ETransfer),
	}
}

// Save stores the e-transfer, overwriting any previous entry with the same ID.
func (r *ETransferRepository) Save(_ context.Context, et *domain.ETransfer) error {
	if et == nil {
		return domain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.etransfers[et.ID] = et

	return nil
}

// GetByID returns the e-transfer with the given ID.
func (r *ETransferRepository) GetByID(_ context.Context, id string) (*domain.ETransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	et, ok := r.etransfers[id]
	if !ok {
		return nil, domain.ErrETransferNotFound
	}

	return et, nil
}

// ListByCustomer returns all e-transfers initiated by the customer.
func (r *ETransferRepository) ListByCustomer(_ context.Context, customerID string) ([]*domain.ETransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ets []*domain.ETransfer
	for _, et := range r.etransfers {
		if customerID != "" && et.Transaction.CustomerID == customerID {
			ets = append(ets, et)
		}
	}

	return ets, nil
}

// ListByRecipient returns all e-transfers sent to the recipient.
func (r *ETransferRepository) ListByRecipient(_ context.Context, recipientID string) ([]*domain.ETransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ets []*domain.ETransfer
	for _, et := range r.etransfers {
		if recipientID != "" && et.Recipient.ID == recipientID {
			ets = append(ets, et)
		}
	}

	return ets, nil
}
