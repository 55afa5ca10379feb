package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-ledger/internal/domain"
	"github.com/api-sage/account-ledger/internal/ledger"
)

func creditOp(amount int64) domain.Operation {
	return domain.Operation{
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: time.Now(),
		Type:      domain.OperationCredit,
	}
}

func debitOp(amount int64) domain.Operation {
	return domain.Operation{
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: time.Now(),
		Type:      domain.OperationDebit,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "111", "Alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated account id")
	}
	if created.Statement == nil || len(created.Statement) != 0 {
		t.Fatal("expected empty non-nil statement")
	}

	fetched, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.ID != created.ID || fetched.Name != "Alice" {
		t.Fatalf("fetched %+v, want the created account", fetched)
	}
}

func TestCreateDuplicateCPFConflicts(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Create(ctx, "111", "Impostor"); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("err = %v, want ErrAccountExists", err)
	}

	account, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if account.Name != "Alice" {
		t.Fatalf("name = %q, conflict must not mutate the existing account", account.Name)
	}
}

func TestGetUnknownCPF(t *testing.T) {
	repo := NewAccountRepository()

	if _, err := repo.GetByCPF(context.Background(), "999"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestRename(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Rename(ctx, "111", "Alice Updated"); err != nil {
		t.Fatalf("rename: %v", err)
	}

	account, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if account.Name != "Alice Updated" {
		t.Fatalf("name = %q, want Alice Updated", account.Name)
	}
}

func TestRemoveMatchesByIdentity(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "222", "Bob"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Remove(ctx, "222"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	remaining, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].CPF != "111" {
		t.Fatalf("remaining = %+v, want only cpf 111", remaining)
	}

	if err := repo.Remove(ctx, "222"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestDebitRejectsOverdraft(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Credit(ctx, "111", creditOp(100)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	if err := repo.Debit(ctx, "111", debitOp(150)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	account, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(account.Statement) != 1 {
		t.Fatalf("statement grew to %d entries after a rejected debit", len(account.Statement))
	}
	if !ledger.Balance(account.Statement).Equal(decimal.NewFromInt(100)) {
		t.Fatal("balance changed after a rejected debit")
	}
}

func TestDebitAllowsExactBalance(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Credit(ctx, "111", creditOp(100)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	if err := repo.Debit(ctx, "111", debitOp(100)); err != nil {
		t.Fatalf("debit of the exact balance must pass: %v", err)
	}

	account, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ledger.Balance(account.Statement).Equal(decimal.Zero) {
		t.Fatal("expected zero balance")
	}
}

func TestConcurrentWithdrawalsCannotBothPass(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Credit(ctx, "111", creditOp(100)); err != nil {
		t.Fatalf("credit: %v", err)
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Debit(ctx, "111", debitOp(100))
		}()
	}
	wg.Wait()
	close(results)

	var rejected, accepted int
	for err := range results {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			rejected++
		} else if err == nil {
			accepted++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if accepted != 1 || rejected != 1 {
		t.Fatalf("accepted=%d rejected=%d, want exactly one of each", accepted, rejected)
	}

	account, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ledger.Balance(account.Statement).Equal(decimal.Zero) {
		t.Fatal("expected zero balance after the single accepted withdrawal")
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "111", "Alice"); err != nil {
		t.Fatalf("create: %v", err)
	}

	snapshot, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	snapshot.Name = "Mutated"
	snapshot.Statement = append(snapshot.Statement, creditOp(1))

	stored, err := repo.GetByCPF(ctx, "111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Name != "Alice" || len(stored.Statement) != 0 {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}
