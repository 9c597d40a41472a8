package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Transaction is an immutable record of a money movement attempt. Only the
// status and failure reason change, and only once: PENDING to COMPLETED or
// PENDING to FAILED.
type Transaction struct {
	ID         string
	CustomerID string

	// Exactly one of the two may be empty. An empty destination with a
	// non-empty source is the shape of an outgoing e-transfer.
	SourceAccountID      string
	DestinationAccountID string

	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time

	Status        TransactionStatus
	FailureReason string
}

// NewTransaction creates a transaction in PENDING state.
func NewTransaction(id, customerID, sourceAccountID, destinationAccountID string, amount decimal.Decimal, description string) (*Transaction, error) {
	if err := ValidateID("transaction ID", id); err != nil {
		return nil, err
	}

	if err := ValidateID("customer ID", customerID); err != nil {
		return nil, err
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	if sourceAccountID == "" && destinationAccountID == "" {
		return nil, fmt.Errorf("%w: at least one of source and destination account is required", ErrInvalidArgument)
	}

	return &Transaction{
		ID:                   id,
		CustomerID:           customerID,
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
		Amount:               amount,
		Description:          strings.TrimSpace(description),
		CreatedAt:            time.Now().UTC(),
		Status:               TransactionPending,
	}, nil
}

// MarkCompleted finalizes the transaction as COMPLETED. A transaction
// transitions exactly once.
func (t *Transaction) MarkCompleted() error {
	if t.Status != TransactionPending {
		return ErrTransactionFinalized
	}

	t.Status = TransactionCompleted
	t.FailureReason = ""

	return nil
}

// MarkFailed finalizes the transaction as FAILED with a human-readable reason.
func (t *Transaction) MarkFailed(reason string) error {
	if t.Status != TransactionPending {
		return ErrTransactionFinalized
	}

	t.Status = TransactionFailed
	t.FailureReason = reason

	return nil
}

// IsSuccessful reports whether the transaction completed.
func (t *Transaction) IsSuccessful() bool {
	return t.Status == TransactionCompleted
}

// IsOutgoingETransfer reports whether the transaction has the shape of an
// e-transfer debit: money leaves a source account with no destination account.
func (t *Transaction) IsOutgoingETransfer() bool {
	return t.SourceAccountID != "" && t.DestinationAccountID == ""
}
