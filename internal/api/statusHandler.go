package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hotpot-server/internal/core"
)

// StatusHandler serves the read-only table status: seated players, dish
// count, and the last activity timestamp. It never mutates state.
func StatusHandler(registry *core.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID := mux.Vars(r)["id"]
		if tableID == "" {
			http.Error(w, "table id required", http.StatusBadRequest)
			return
		}
		status := registry.Get(tableID).Status()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	}
}
