package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/account-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/account-ledger/internal/adapter/http/models"
	"github.com/api-sage/account-ledger/internal/commons"
	"github.com/api-sage/account-ledger/internal/domain"
)

type AccountService interface {
	Create(ctx context.Context, req models.CreateAccountRequest) (domain.Account, error)
	Rename(ctx context.Context, cpf string, req models.UpdateAccountRequest) error
	Delete(ctx context.Context, cpf string) ([]domain.Account, error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

// RegisterRoutes mounts /accounts. Creation is the one operation that runs
// without the account resolver; every other method goes through it.
func (c *AccountController) RegisterRoutes(mux *http.ServeMux, resolveAccount func(http.Handler) http.Handler) {
	resolved := http.Handler(http.HandlerFunc(c.handleResolved))
	if resolveAccount != nil {
		resolved = resolveAccount(resolved)
	}

	mux.Handle("/accounts", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			c.createAccount(w, r)
			return
		}
		resolved.ServeHTTP(w, r)
	}))
}

func (c *AccountController) handleResolved(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.getAccount(w, r)
	case http.MethodPut:
		c.updateAccount(w, r)
	case http.MethodDelete:
		c.deleteAccount(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.Message("method not allowed"))
	}
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.Message("invalid request body"))
		return
	}

	account, err := c.service.Create(r.Context(), req)
	if err != nil {
		logError(r, err)
		if errors.Is(err, domain.ErrAccountExists) {
			writeJSON(w, http.StatusBadRequest, commons.Message(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, commons.Message("failed to create account"))
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusBadRequest, commons.Message(domain.ErrAccountNotFound.Error()))
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (c *AccountController) updateAccount(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusBadRequest, commons.Message(domain.ErrAccountNotFound.Error()))
		return
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.Message("invalid request body"))
		return
	}

	if err := c.service.Rename(r.Context(), account.CPF, req); err != nil {
		logError(r, err)
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeJSON(w, http.StatusBadRequest, commons.Message(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, commons.Message("failed to update account"))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *AccountController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusBadRequest, commons.Message(domain.ErrAccountNotFound.Error()))
		return
	}

	remaining, err := c.service.Delete(r.Context(), account.CPF)
	if err != nil {
		logError(r, err)
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeJSON(w, http.StatusBadRequest, commons.Message(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, commons.Message("failed to delete account"))
		return
	}

	writeJSON(w, http.StatusOK, remaining)
}
