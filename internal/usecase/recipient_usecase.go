package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/retailbank/fundsmove/internal/domain"
)

// RecipientUseCase manages a customer's saved e-transfer recipients.
type RecipientUseCase struct {
	recipientRepo RecipientRepository
	idGen         IDGenerator
	logger        zerolog.Logger
}

// NewRecipientUseCase creates a new RecipientUseCase.
func NewRecipientUseCase(recipientRepo RecipientRepository, idGen IDGenerator, logger zerolog.Logger) *RecipientUseCase {
	return &RecipientUseCase{
		recipientRepo: recipientRepo,
		idGen:         idGen,
		logger:        logger,
	}
}

// AddRecipientInput represents input for saving a recipient.
type AddRecipientInput struct {
	OwnerID string
	Name    string
	Email   string
	Phone   string
}

// AddRecipient validates and saves a new recipient for the customer.
func (uc *RecipientUseCase) AddRecipient(ctx context.Context, input AddRecipientInput) (*domain.Recipient, error) {
	recipient, err := domain.NewRecipient(uc.idGen.Generate(), input.OwnerID, input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := uc.recipientRepo.Save(ctx, recipient); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("recipient_id", recipient.ID).
		Str("owner_id", recipient.OwnerID).
		Msg("recipient saved")

	return recipient, nil
}

// UpdateRecipient replaces the contact details of a recipient owned by the
// customer.
func (uc *RecipientUseCase) UpdateRecipient(ctx context.Context, ownerID, recipientID, name, email, phone string) (*domain.Recipient, error) {
	recipient, err := uc.ownedRecipient(ctx, ownerID, recipientID)
	if err != nil {
		return nil, err
	}

	if err := recipient.Update(name, email, phone); err != nil {
		return nil, err
	}

	if err := uc.recipientRepo.Save(ctx, recipient); err != nil {
		return nil, err
	}

	return recipient, nil
}

// ListRecipients lists the recipients saved by a customer.
func (uc *RecipientUseCase) ListRecipients(ctx context.Context, ownerID string) ([]*domain.Recipient, error) {
	if err := domain.ValidateID("owner customer ID", ownerID); err != nil {
		return nil, err
	}

	return uc.recipientRepo.ListByOwner(ctx, ownerID)
}

// RemoveRecipient deletes a recipient owned by the customer.
func (uc *RecipientUseCase) RemoveRecipient(ctx context.Context, ownerID, recipientID string) error {
	if _, err := uc.ownedRecipient(ctx, ownerID, recipientID); err != nil {
		return err
	}

	return uc.recipientRepo.Delete(ctx, recipientID)
}

func (uc *RecipientUseCase) ownedRecipient(ctx context.Context, ownerID, recipientID string) (*domain.Recipient, error) {
	if err := domain.ValidateID("owner customer ID", ownerID); err != nil {
		return nil, err
	}

	if err := domain.ValidateID("recipient ID", recipientID); err != nil {
		return nil, err
	}

	recipient, err := uc.recipientRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	if !recipient.IsOwnedBy(ownerID) {
		return nil, domain.ErrNotRecipientOwner
	}

	return recipient, nil
}
