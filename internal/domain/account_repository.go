package domain

import "context"

// AccountRepository owns the account collection. Every returned Account is
// a snapshot; callers never hold references into the store. Debit performs
// the overdraft check and the append as a single atomic step.
type AccountRepository interface {
	Create(ctx context.Context, cpf, name string) (Account, error)
	GetByCPF(ctx context.Context, cpf string) (Account, error)
	Rename(ctx context.Context, cpf, name string) error
	Remove(ctx context.Context, cpf string) error
	List(ctx context.Context) ([]Account, error)
	Credit(ctx context.Context, cpf string, op Operation) error
	Debit(ctx context.Context, cpf string, op Operation) error
}
