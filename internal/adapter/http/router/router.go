package router

import "net/http"

type StatementRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, logMiddleware func(http.Handler) http.Handler)
}

type LedgerRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, logMiddleware func(http.Handler) http.Handler)
}

func New(
	statementController StatementRouteRegistrar,
	ledgerController LedgerRouteRegistrar,
	logMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)
	registerHealthRoute(mux)

	if statementController != nil {
		statementController.RegisterRoutes(mux, logMiddleware)
	}
	if ledgerController != nil {
		ledgerController.RegisterRoutes(mux, logMiddleware)
	}

	return mux
}
