package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/api-sage/account-ledger/internal/domain"
	"github.com/api-sage/account-ledger/internal/ledger"
)

// AccountRepository is the process-wide account store. A single mutex
// serializes every mutation, so a withdrawal's balance check and its
// append happen in one critical section and two concurrent withdrawals
// cannot both pass the check.
type AccountRepository struct {
	mu       sync.Mutex
	accounts []*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(_ context.Context, cpf, name string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lookup(cpf) != nil {
		return domain.Account{}, domain.ErrAccountExists
	}

	account := &domain.Account{
		ID:        uuid.NewString(),
		CPF:       cpf,
		Name:      name,
		Statement: []domain.Operation{},
	}
	r.accounts = append(r.accounts, account)

	return snapshot(account), nil
}

func (r *AccountRepository) GetByCPF(_ context.Context, cpf string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.lookup(cpf)
	if account == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return snapshot(account), nil
}

func (r *AccountRepository) Rename(_ context.Context, cpf, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.lookup(cpf)
	if account == nil {
		return domain.ErrAccountNotFound
	}
	account.Name = name

	return nil
}

// Remove deletes the account whose CPF matches, never by position.
func (r *AccountRepository) Remove(_ context.Context, cpf string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, account := range r.accounts {
		if account.CPF == cpf {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}

	return domain.ErrAccountNotFound
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, snapshot(account))
	}

	return accounts, nil
}

func (r *AccountRepository) Credit(_ context.Context, cpf string, op domain.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.lookup(cpf)
	if account == nil {
		return domain.ErrAccountNotFound
	}
	account.Statement = append(account.Statement, op)

	return nil
}

// Debit appends a debit operation unless it would drive the balance
// negative. Check and append share the critical section.
func (r *AccountRepository) Debit(_ context.Context, cpf string, op domain.Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account := r.lookup(cpf)
	if account == nil {
		return domain.ErrAccountNotFound
	}

	if ledger.Balance(account.Statement).LessThan(op.Amount) {
		return domain.ErrInsufficientFunds
	}
	account.Statement = append(account.Statement, op)

	return nil
}

// lookup must be called with the mutex held.
func (r *AccountRepository) lookup(cpf string) *domain.Account {
	for _, account := range r.accounts {
		if account.CPF == cpf {
			return account
		}
	}

	return nil
}

func snapshot(account *domain.Account) domain.Account {
	copied := *account
	copied.Statement = make([]domain.Operation, len(account.Statement))
	copy(copied.Statement, account.Statement)

	return copied
}
