package domain

import (
	"errors"
	"fmt"
)

var (
	// Precondition errors. Raised before any state mutation.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLimitExceeded   = errors.New("limit exceeded")

	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive and not zero", ErrInvalidArgument)

	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrInvalidArgument)
	ErrRecipientNotFound  = fmt.Errorf("%w: recipient not found", ErrInvalidArgument)
	ErrSameAccount        = fmt.Errorf("%w: source and destination accounts cannot be the same", ErrInvalidArgument)
	ErrNotAccountOwner    = fmt.Errorf("%w: customer does not own the account", ErrInvalidArgument)
	ErrNotRecipientOwner  = fmt.Errorf("%w: customer does not have this recipient saved", ErrInvalidArgument)
	ErrNotSavingsAccount  = fmt.Errorf("%w: not a savings account", ErrInvalidArgument)
	ErrUnknownAccountKind = fmt.Errorf("%w: unknown account kind", ErrInvalidArgument)

	// Business failure. Recorded on a FAILED transaction, never raised past
	// the orchestration entry points.
	ErrDebitNotAllowed = errors.New("insufficient funds or account rules do not allow this debit")

	// Lookup errors outside the precondition class.
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrETransferNotFound   = errors.New("e-transfer not found")

	// Status lifecycle errors
	ErrTransactionFinalized    = errors.New("transaction status has already been finalized")
	ErrETransferFinalized      = errors.New("e-transfer status has already been finalized")
	ErrTransactionNotCompleted = errors.New("wrapped transaction is not completed")
)
