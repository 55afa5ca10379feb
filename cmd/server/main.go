package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/api-sage/account-ledger/internal/adapter/http/controller"
	"github.com/api-sage/account-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/account-ledger/internal/adapter/http/router"
	"github.com/api-sage/account-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/account-ledger/internal/config"
	"github.com/api-sage/account-ledger/internal/usecase/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo := memory.NewAccountRepository()

	accountService := services.NewAccountService(accountRepo)
	statementService := services.NewStatementService(accountRepo, cfg.Location)

	mux := router.New(
		controller.NewAccountController(accountService),
		controller.NewStatementController(statementService),
		middleware.ResolveAccount(accountRepo),
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("account ledger listening on %s", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}
