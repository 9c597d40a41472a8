package memory

import (
	"context"
	"sync"

	"github.com/retailbank/fundsmove/internal/domain"
)

// RecipientRepository is an in-memory recipient store.
type RecipientRepository struct {
	mu         sync.RWMutex
	recipients map[string]*domain.Recipient
}

// NewRecipientRepository creates an empty in-memory recipient repository.
func NewRecipientRepository() *RecipientRepository {
	return &RecipientRepository{
		recipients: make(map[string]*domain.Recipient),
	}
}

// Save stores the recipient, overwriting any previous entry with the same ID.
func (r *RecipientRepository) Save(_ context.Context, recipient *domain.Recipient) error {
	if recipient == nil {
		return domain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.recipients[recipient.ID] = recipient

	return nil
}

// GetByID returns the recipient with the given ID.
func (r *RecipientRepository) GetByID(_ context.Context, id string) (*domain.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipient, ok := r.recipients[id]
	if !ok {
		return nil, domain.ErrRecipientNotFound
	}

	return recipient, nil
}

// ListByOwner returns all recipients saved by the customer.
func (r *RecipientRepository) ListByOwner(_ context.Context, ownerID string) ([]*domain.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recipients []*domain.Recipient
	for _, recipient := range r.recipients {
		if recipient.IsOwnedBy(ownerID) {
			recipients = append(recipients, recipient)
		}
	}

	return recipients, nil
}

// Delete removes the recipient with the given ID. Deleting an unknown ID is
// a no-op.
func (r *RecipientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.recipients, id)

	return nil
}
