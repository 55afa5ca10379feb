package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-ledger/internal/adapter/http/models"
	"github.com/api-sage/account-ledger/internal/domain"
	"github.com/api-sage/account-ledger/internal/ledger"
	"github.com/api-sage/account-ledger/internal/logger"
)

type StatementService struct {
	accountRepo domain.AccountRepository
	location    *time.Location
}

func NewStatementService(accountRepo domain.AccountRepository, location *time.Location) *StatementService {
	if location == nil {
		location = time.UTC
	}

	return &StatementService{
		accountRepo: accountRepo,
		location:    location,
	}
}

// Statement returns the account's full operation history.
func (s *StatementService) Statement(_ context.Context, account domain.Account) []domain.Operation {
	logger.Info("statement service statement request", logger.Fields{
		"accountId":  account.ID,
		"operations": len(account.Statement),
	})

	return account.Statement
}

// StatementByDate filters the statement to the calendar day named by a
// YYYY-MM-DD string, interpreted in the service's configured location.
func (s *StatementService) StatementByDate(_ context.Context, account domain.Account, date string) ([]domain.Operation, error) {
	logger.Info("statement service statement by date request", logger.Fields{
		"accountId": account.ID,
		"date":      date,
	})

	day, err := ledger.ParseDay(date, s.location)
	if err != nil {
		logger.Error("statement service statement by date parse failed", err, logger.Fields{
			"date": date,
		})
		return nil, err
	}

	return ledger.FilterByDate(account.Statement, day), nil
}

func (s *StatementService) Deposit(ctx context.Context, cpf string, req models.DepositRequest) error {
	logger.Info("statement service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	op := domain.Operation{
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		CreatedAt:   time.Now(),
		Type:        domain.OperationCredit,
	}

	if err := s.accountRepo.Credit(ctx, cpf, op); err != nil {
		logger.Error("statement service deposit failed", err, nil)
		return err
	}

	logger.Info("statement service deposit success", logger.Fields{
		"amount": req.Amount,
	})

	return nil
}

// Withdraw appends a debit operation; the repository rejects it with
// ErrInsufficientFunds when the amount exceeds the current balance.
func (s *StatementService) Withdraw(ctx context.Context, cpf string, req models.WithdrawRequest) error {
	logger.Info("statement service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	op := domain.Operation{
		Amount:    req.Amount,
		CreatedAt: time.Now(),
		Type:      domain.OperationDebit,
	}

	if err := s.accountRepo.Debit(ctx, cpf, op); err != nil {
		logger.Error("statement service withdraw failed", err, nil)
		return err
	}

	logger.Info("statement service withdraw success", logger.Fields{
		"amount": req.Amount,
	})

	return nil
}

func (s *StatementService) Balance(_ context.Context, account domain.Account) decimal.Decimal {
	balance := ledger.Balance(account.Statement)

	logger.Info("statement service balance request", logger.Fields{
		"accountId": account.ID,
		"balance":   balance,
	})

	return balance
}
