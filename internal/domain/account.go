package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind tags the account variant. Debit policy is dispatched on it.
type AccountKind string

const (
	AccountKindChecking AccountKind = "CHECKING"
	AccountKindSavings  AccountKind = "SAVINGS"
)

// AccountPolicy carries the variant limits fixed on an account at open time.
// Values come from configuration so that deployments can tune them without
// touching the debit rules.
type AccountPolicy struct {
	// Per-debit ceiling for checking accounts. Zero disables the ceiling.
	CheckingDebitCeiling decimal.Decimal

	// Maximum number of withdrawals per period for savings accounts.
	SavingsWithdrawalLimit int

	// Flat monthly interest rate for savings accounts, e.g. 0.001 for 0.1%.
	SavingsMonthlyInterestRate decimal.Decimal
}

// DefaultAccountPolicy returns the stock retail policy: no checking ceiling,
// 5 savings withdrawals per month, 0.1% monthly interest.
func DefaultAccountPolicy() AccountPolicy {
	return AccountPolicy{
		CheckingDebitCeiling:       decimal.Zero,
		SavingsWithdrawalLimit:     5,
		SavingsMonthlyInterestRate: decimal.NewFromFloat(0.001),
	}
}

// Account holds a customer balance. The balance never goes negative and
// changes only through Credit and Debit.
type Account struct {
	ID         string
	CustomerID string
	Kind       AccountKind
	Balance    decimal.Decimal
	CreatedAt  time.Time

	// Checking only. Zero means no per-debit ceiling.
	DebitCeiling decimal.Decimal

	// Savings only. The counter resets once per period via
	// ResetMonthlyWithdrawals; there is no internal clock.
	MonthlyWithdrawalCount int
	MonthlyWithdrawalLimit int
	MonthlyInterestRate    decimal.Decimal

	transactions []*Transaction
}

// NewAccount opens an account with a non-negative opening balance.
func NewAccount(id, customerID string, kind AccountKind, openingBalance decimal.Decimal, policy AccountPolicy) (*Account, error) {
	if err := ValidateID("account ID", id); err != nil {
		return nil, err
	}

	if err := ValidateID("customer ID", customerID); err != nil {
		return nil, err
	}

	if kind != AccountKindChecking && kind != AccountKindSavings {
		return nil, ErrUnknownAccountKind
	}

	if openingBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}

	account := &Account{
		ID:         id,
		CustomerID: customerID,
		Kind:       kind,
		Balance:    openingBalance,
		CreatedAt:  time.Now().UTC(),
	}

	switch kind {
	case AccountKindChecking:
		account.DebitCeiling = policy.CheckingDebitCeiling
	case AccountKindSavings:
		account.MonthlyWithdrawalLimit = policy.SavingsWithdrawalLimit
		account.MonthlyInterestRate = policy.SavingsMonthlyInterestRate
	}

	return account, nil
}

// IsOwnedBy reports whether the account belongs to the given customer.
func (a *Account) IsOwnedBy(customerID string) bool {
	return customerID != "" && a.CustomerID == customerID
}

// Credit adds amount to the balance. It never fails for a valid amount.
func (a *Account) Credit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.Balance = a.Balance.Add(amount)

	return nil
}

// CanDebit evaluates the variant debit policy without mutating state.
func (a *Account) CanDebit(amount decimal.Decimal) (bool, error) {
	if err := ValidateAmount(amount); err != nil {
		return false, err
	}

	switch a.Kind {
	case AccountKindSavings:
		// The withdrawal cap is checked before balance sufficiency: hitting
		// the cap denies the debit even when funds are available.
		if a.MonthlyWithdrawalCount >= a.MonthlyWithdrawalLimit {
			return false, nil
		}
	case AccountKindChecking:
		if a.DebitCeiling.IsPositive() && amount.GreaterThan(a.DebitCeiling) {
			return false, nil
		}
	}

	return a.Balance.GreaterThanOrEqual(amount), nil
}

// Debit subtracts amount from the balance after re-validating the debit
// policy. The re-validation keeps check-then-mutate atomic when the caller's
// earlier CanDebit has been invalidated in the meantime.
func (a *Account) Debit(amount decimal.Decimal) error {
	ok, err := a.CanDebit(amount)
	if err != nil {
		return err
	}

	if !ok {
		return ErrDebitNotAllowed
	}

	a.Balance = a.Balance.Sub(amount)

	if a.Kind == AccountKindSavings {
		a.MonthlyWithdrawalCount++
	}

	return nil
}

// AddTransaction appends a transaction to the account history. Nil
// transactions are ignored.
func (a *Account) AddTransaction(tx *Transaction) {
	if tx != nil {
		a.transactions = append(a.transactions, tx)
	}
}

// Transactions returns a copy of the account's transaction history.
func (a *Account) Transactions() []*Transaction {
	out := make([]*Transaction, len(a.transactions))
	copy(out, a.transactions)

	return out
}

// ApplyMonthlyInterest credits one month of interest to a savings balance.
// The caller is responsible for invoking it once per period.
func (a *Account) ApplyMonthlyInterest() error {
	if a.Kind != AccountKindSavings {
		return ErrNotSavingsAccount
	}

	interest := a.Balance.Mul(a.MonthlyInterestRate)
	if !interest.IsPositive() {
		return nil
	}

	return a.Credit(interest)
}

// ResetMonthlyWithdrawals starts a new withdrawal period on a savings
// account. The caller is responsible for invoking it once per period.
func (a *Account) ResetMonthlyWithdrawals() error {
	if a.Kind != AccountKindSavings {
		return ErrNotSavingsAccount
	}

	a.MonthlyWithdrawalCount = 0

	return nil
}
