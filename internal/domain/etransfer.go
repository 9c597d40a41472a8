package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ETransferStatus is the lifecycle state of an e-transfer.
type ETransferStatus string

const (
	ETransferPending ETransferStatus = "PENDING"
	ETransferSent    ETransferStatus = "SENT"
	ETransferFailed  ETransferStatus = "FAILED"
)

// ETransfer wraps the transaction that moves money out of the source account
// with the recipient it was sent to. SENT implies the wrapped transaction is
// COMPLETED.
type ETransfer struct {
	ID          string
	Transaction *Transaction
	Recipient   *Recipient
	Message     string
	CreatedAt   time.Time

	Status        ETransferStatus
	FailureReason string
}

// NewETransfer creates an e-transfer record in PENDING state around an
// existing transaction and recipient.
func NewETransfer(id string, tx *Transaction, recipient *Recipient, message string) (*ETransfer, error) {
	if err := ValidateID("e-transfer ID", id); err != nil {
		return nil, err
	}

	if tx == nil {
		return nil, ErrTransactionNotFound
	}

	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	return &ETransfer{
		ID:          id,
		Transaction: tx,
		Recipient:   recipient,
		Message:     strings.TrimSpace(message),
		CreatedAt:   time.Now().UTC(),
		Status:      ETransferPending,
	}, nil
}

// MarkSent finalizes the e-transfer as SENT. The wrapped transaction must
// already be COMPLETED.
func (e *ETransfer) MarkSent() error {
	if e.Status != ETransferPending {
		return ErrETransferFinalized
	}

	if e.Transaction.Status != TransactionCompleted {
		return ErrTransactionNotCompleted
	}

	e.Status = ETransferSent
	e.FailureReason = ""

	return nil
}

// MarkFailed finalizes the e-transfer as FAILED with a human-readable reason.
func (e *ETransfer) MarkFailed(reason string) error {
	if e.Status != ETransferPending {
		return ErrETransferFinalized
	}

	e.Status = ETransferFailed
	e.FailureReason = reason

	return nil
}

// IsSent reports whether the e-transfer was delivered.
func (e *ETransfer) IsSent() bool {
	return e.Status == ETransferSent && e.Transaction.IsSuccessful()
}

// Amount returns the amount of the wrapped transaction.
func (e *ETransfer) Amount() decimal.Decimal {
	return e.Transaction.Amount
}
