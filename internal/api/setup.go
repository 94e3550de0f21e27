package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"hotpot-server/internal/core"
)

// Router builds the full HTTP surface for a registry.
func Router(registry *core.Registry) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/table/{id}/status", StatusHandler(registry)).Methods(http.MethodGet)
	r.HandleFunc("/table/{id}", WsHandler(registry))
	r.HandleFunc("/api/tables", TablesHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/dishes", DishesHandler(registry)).Methods(http.MethodGet)
	return r
}

// Serve wires the HTTP surface and blocks until the listener fails.
func Serve(addr string, registry *core.Registry) error {
	h := handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stdout, Router(registry)))

	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, h)
}
