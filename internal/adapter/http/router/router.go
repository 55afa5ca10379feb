package router

import "net/http"

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, resolveAccount func(http.Handler) http.Handler)
}

type StatementRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, resolveAccount func(http.Handler) http.Handler)
}

func New(
	accountController AccountRouteRegistrar,
	statementController StatementRouteRegistrar,
	resolveAccount func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if accountController != nil {
		accountController.RegisterRoutes(mux, resolveAccount)
	}
	if statementController != nil {
		statementController.RegisterRoutes(mux, resolveAccount)
	}

	return mux
}
