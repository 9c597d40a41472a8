package usecase

// debitRefusedReason is the fixed audit reason recorded on a transaction when
// the source account refuses a debit.
const debitRefusedReason = "insufficient funds or account rules do not allow this debit"
