// Package mocks provides hand-rolled test doubles for the repository ports.
// Each mock falls back to map-backed in-memory behavior unless the matching
// Func field is set.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/retailbank/fundsmove/internal/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	SaveFunc           func(ctx context.Context, account *domain.Account) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Account, error)
	ListByCustomerFunc func(ctx context.Context, customerID string) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Save(ctx context.Context, account *domain.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[id]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Account, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, account := range m.accounts {
		if account.IsOwnedBy(customerID) {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	SaveFunc                       func(ctx context.Context, tx *domain.Transaction) error
	GetByIDFunc                    func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccountFunc              func(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	ListByCustomerAndDateRangeFunc func(ctx context.Context, customerID string, from, to time.Time) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok {
		return tx, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txs []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.SourceAccountID == accountID || tx.DestinationAccountID == accountID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (m *MockTransactionRepository) ListByCustomerAndDateRange(ctx context.Context, customerID string, from, to time.Time) ([]*domain.Transaction, error) {
	if m.ListByCustomerAndDateRangeFunc != nil {
		return m.ListByCustomerAndDateRangeFunc(ctx, customerID, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txs []*domain.Transaction
	for _, tx := range m.transactions {
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

// All returns every stored transaction, for assertions on persisted records.
func (m *MockTransactionRepository) All() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var txs []*domain.Transaction
	for _, tx := range m.transactions {
		txs = append(txs, tx)
	}
	return txs
}

// MockRecipientRepository is a mock implementation of RecipientRepository.
type MockRecipientRepository struct {
	mu         sync.RWMutex
	recipients map[string]*domain.Recipient

	SaveFunc        func(ctx context.Context, recipient *domain.Recipient) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Recipient, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.Recipient, error)
	DeleteFunc      func(ctx context.Context, id string) error
}

func NewMockRecipientRepository() *MockRecipientRepository {
	return &MockRecipientRepository{
		recipients: make(map[string]*domain.Recipient),
	}
}

func (m *MockRecipientRepository) Save(ctx context.Context, recipient *domain.Recipient) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, recipient)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipients[recipient.ID] = recipient
	return nil
}

func (m *MockRecipientRepository) GetByID(ctx context.Context, id string) (*domain.Recipient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if recipient, ok := m.recipients[id]; ok {
		return recipient, nil
	}
	return nil, domain.ErrRecipientNotFound
}

func (m *MockRecipientRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Recipient, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var recipients []*domain.Recipient
	for _, recipient := range m.recipients {
		if recipient.IsOwnedBy(ownerID) {
			recipients = append(recipients, recipient)
		}
	}
	return recipients, nil
}

func (m *MockRecipientRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recipients, id)
	return nil
}

// MockETransferRepository is a mock implementation of ETransferRepository.
type MockETransferRepository struct {
	mu         sync.RWMutex
	etransfers map[string]*domain.ETransfer

	SaveFunc            func(ctx context.Context, et *domain.ETransfer) error
	GetByIDFunc         func(ctx context.Context, id string) (*domain.ETransfer, error)
	ListByCustomerFunc  func(ctx context.Context, customerID string) ([]*domain.ETransfer, error)
	ListByRecipientFunc func(ctx context.Context, recipientID string) ([]*domain.ETransfer, error)
}

func NewMockETransferRepository() *MockETransferRepository {
	return &MockETransferRepository{
		etransfers: make(map[string]*domain.ETransfer),
	}
}

func (m *MockETransferRepository) Save(ctx context.Context, et *domain.ETransfer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, et)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.etransfers[et.ID] = et
	return nil
}

func (m *MockETransferRepository) GetByID(ctx context.Context, id string) (*domain.ETransfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if et, ok := m.etransfers[id]; ok {
		return et, nil
	}
	return nil, domain.ErrETransferNotFound
}

func (m *MockETransferRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.ETransfer, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ets []*domain.ETransfer
	for _, et := range m.etransfers {
		if et.Transaction.CustomerID == customerID {
			ets = append(ets, et)
		}
	}
	return ets, nil
}

func (m *MockETransferRepository) ListByRecipient(ctx context.Context, recipientID string) ([]*domain.ETransfer, error) {
	if m.ListByRecipientFunc != nil {
		return m.ListByRecipientFunc(ctx, recipientID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ets []*domain.ETransfer
	for _, et := range m.etransfers {
		if et.Recipient.ID == recipientID {
			ets = append(ets, et)
		}
	}
	return ets, nil
}

// All returns every stored e-transfer, for assertions on persisted records.
func (m *MockETransferRepository) All() []*domain.ETransfer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ets []*domain.ETransfer
	for _, et := range m.etransfers {
		ets = append(ets, et)
	}
	return ets
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
