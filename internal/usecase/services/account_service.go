package services

import (
	"context"
	"strings"

	"github.com/api-sage/account-ledger/internal/adapter/http/models"
	"github.com/api-sage/account-ledger/internal/domain"
	"github.com/api-sage/account-ledger/internal/logger"
)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Create(ctx context.Context, req models.CreateAccountRequest) (domain.Account, error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	cpf := strings.TrimSpace(req.CPF)
	name := strings.TrimSpace(req.Name)

	account, err := s.accountRepo.Create(ctx, cpf, name)
	if err != nil {
		logger.Error("account service create account failed", err, nil)
		return domain.Account{}, err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId": account.ID,
	})

	return account, nil
}

func (s *AccountService) Rename(ctx context.Context, cpf string, req models.UpdateAccountRequest) error {
	logger.Info("account service rename account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := s.accountRepo.Rename(ctx, cpf, strings.TrimSpace(req.Name)); err != nil {
		logger.Error("account service rename account failed", err, nil)
		return err
	}

	return nil
}

// Delete removes the account and returns the accounts that remain, which
// the delete endpoint echoes back.
func (s *AccountService) Delete(ctx context.Context, cpf string) ([]domain.Account, error) {
	logger.Info("account service delete account request", nil)

	if err := s.accountRepo.Remove(ctx, cpf); err != nil {
		logger.Error("account service delete account failed", err, nil)
		return nil, err
	}

	remaining, err := s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("account service list accounts after delete failed", err, nil)
		return nil, err
	}

	logger.Info("account service delete account success", logger.Fields{
		"remainingAccounts": len(remaining),
	})

	return remaining, nil
}
