package domain

import (
	"strings"
	"time"
)

// Recipient is a saved e-transfer payee belonging to one customer. Contact
// details are validated before an instance exists; there is no observable
// partially-valid recipient.
type Recipient struct {
	ID        string
	OwnerID   string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// NewRecipient creates a recipient after validating its contact details.
// Phone is optional.
func NewRecipient(id, ownerID, name, email, phone string) (*Recipient, error) {
	if err := ValidateID("recipient ID", id); err != nil {
		return nil, err
	}

	if err := ValidateID("owner customer ID", ownerID); err != nil {
		return nil, err
	}

	if err := validateRecipientInfo(name, email, phone); err != nil {
		return nil, err
	}

	return &Recipient{
		ID:        id,
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Update replaces the recipient's contact details. Validation is identical to
// construction; an invalid update leaves the recipient unchanged.
func (r *Recipient) Update(name, email, phone string) error {
	if err := validateRecipientInfo(name, email, phone); err != nil {
		return err
	}

	r.Name = strings.TrimSpace(name)
	r.Email = strings.TrimSpace(email)
	r.Phone = strings.TrimSpace(phone)

	return nil
}

// IsOwnedBy reports whether the recipient is saved by the given customer.
func (r *Recipient) IsOwnedBy(customerID string) bool {
	return customerID != "" && r.OwnerID == customerID
}

func validateRecipientInfo(name, email, phone string) error {
	if err := ValidateID("recipient name", name); err != nil {
		return err
	}

	if err := ValidateEmail(email); err != nil {
		return err
	}

	return ValidatePhone(phone)
}
