package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/api-sage/account-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/account-ledger/internal/adapter/http/models"
	"github.com/api-sage/account-ledger/internal/commons"
	"github.com/api-sage/account-ledger/internal/domain"
)

type StatementService interface {
	Statement(ctx context.Context, account domain.Account) []domain.Operation
	StatementByDate(ctx context.Context, account domain.Account, date string) ([]domain.Operation, error)
	Deposit(ctx context.Context, cpf string, req models.DepositRequest) error
	Withdraw(ctx context.Context, cpf string, req models.WithdrawRequest) error
	Balance(ctx context.Context, account domain.Account) decimal.Decimal
}

type StatementController struct {
	service StatementService
}

func NewStatementController(service StatementService) *StatementController {
	return &StatementController{service: service}
}

func (c *StatementController) RegisterRoutes(mux *http.ServeMux, resolveAccount func(http.Handler) http.Handler) {
	routes := map[string]http.HandlerFunc{
		"/accounts/statements":          c.getStatement,
		"/accounts/statements/date":     c.getStatementByDate,
		"/accounts/statements/deposit":  c.deposit,
		"/accounts/statements/withdraw": c.withdraw,
		"/accounts/balance":             c.getBalance,
	}

	for pattern, handlerFunc := range routes {
		handler := http.Handler(handlerFunc)
		if resolveAccount != nil {
			handler = resolveAccount(handler)
		}
		mux.Handle(pattern, handler)
	}
}

func (c *StatementController) getStatement(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := c.resolvedAccount(w, r, http.MethodGet)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, c.service.Statement(r.Context(), account))
}

func (c *StatementController) getStatementByDate(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := c.resolvedAccount(w, r, http.MethodGet)
	if !ok {
		return
	}

	statement, err := c.service.StatementByDate(r.Context(), account, r.URL.Query().Get("date"))
	if err != nil {
		logError(r, err)
		writeJSON(w, http.StatusBadRequest, commons.Message("invalid date"))
		return
	}

	writeJSON(w, http.StatusOK, statement)
}

func (c *StatementController) deposit(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := c.resolvedAccount(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.Message("invalid request body"))
		return
	}

	if err := c.service.Deposit(r.Context(), account.CPF, req); err != nil {
		logError(r, err)
		if errors.Is(err, domain.ErrAccountNotFound) {
			writeJSON(w, http.StatusBadRequest, commons.Message(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, commons.Message("failed to deposit"))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *StatementController) withdraw(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := c.resolvedAccount(w, r, http.MethodPost)
	if !ok {
		return
	}

	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.Message("invalid request body"))
		return
	}

	if err := c.service.Withdraw(r.Context(), account.CPF, req); err != nil {
		logError(r, err)
		if errors.Is(err, domain.ErrInsufficientFunds) || errors.Is(err, domain.ErrAccountNotFound) {
			writeJSON(w, http.StatusBadRequest, commons.Message(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, commons.Message("failed to withdraw"))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *StatementController) getBalance(w http.ResponseWriter, r *http.Request) {
	logRequest(r)

	account, ok := c.resolvedAccount(w, r, http.MethodGet)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, c.service.Balance(r.Context(), account))
}

// resolvedAccount enforces the route method and fetches the account the
// resolver attached to the context, answering the error response itself
// when either check fails.
func (c *StatementController) resolvedAccount(w http.ResponseWriter, r *http.Request, method string) (domain.Account, bool) {
	if r.Method != method {
		writeJSON(w, http.StatusMethodNotAllowed, commons.Message("method not allowed"))
		return domain.Account{}, false
	}

	account, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusBadRequest, commons.Message(domain.ErrAccountNotFound.Error()))
		return domain.Account{}, false
	}

	return account, true
}
