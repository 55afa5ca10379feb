package controller

import (
	"encoding/json"
	"net/http"

	"github.com/api-sage/account-ledger/internal/logger"
)

func logRequest(r *http.Request) {
	logger.Info("http request", logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	})
}

func logError(r *http.Request, err error) {
	logger.Error("http handler error", err, logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
