package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/api-sage/account-ledger/internal/commons"
	"github.com/api-sage/account-ledger/internal/domain"
	"github.com/api-sage/account-ledger/internal/logger"
)

type contextKey string

const accountKey contextKey = "account"

// AccountFinder is the slice of the repository the resolver needs.
type AccountFinder interface {
	GetByCPF(ctx context.Context, cpf string) (domain.Account, error)
}

// ResolveAccount reads the cpf request header, resolves it to an account
// and attaches a snapshot to the request context. Unknown CPFs answer
// 400 {"message":"Account not found."} without reaching the handler.
// Every route except account creation runs behind this.
func ResolveAccount(finder AccountFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cpf := strings.TrimSpace(r.Header.Get("cpf"))

			account, err := finder.GetByCPF(r.Context(), cpf)
			if err != nil {
				logger.Info("account resolver rejected request", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(commons.Message(domain.ErrAccountNotFound.Error()))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}

func WithAccount(ctx context.Context, account domain.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFromContext returns the account attached by ResolveAccount.
func AccountFromContext(ctx context.Context) (domain.Account, bool) {
	account, ok := ctx.Value(accountKey).(domain.Account)
	return account, ok
}
