package api

import (
	"encoding/json"
	"net/http"
)

type tablesResponse struct {
	Message string   `json:"message"`
	Tables  []string `json:"tables"`
}

// TablesHandler lists the well-known table keys the lobby advertises.
// Any key is accepted on connect; this is a convenience listing, not a
// capacity registry.
func TablesHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tablesResponse{
		Message: "Available tables",
		Tables:  []string{"table1", "table2", "table3"},
	})
}
