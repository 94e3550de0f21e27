package api

import (
	"encoding/json"
	"net/http"

	"hotpot-server/internal/catalog"
	"hotpot-server/internal/core"
)

type dishesResponse struct {
	Dishes []catalog.Dish `json:"dishes"`
}

// DishesHandler serves the menu over plain HTTP, optionally filtered by
// the "category" query parameter, for clients that want the catalog
// before opening a socket.
func DishesHandler(registry *core.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menu := registry.Menu()
		dishes := menu.All()
		if cat := r.URL.Query().Get("category"); cat != "" {
			dishes = menu.ByCategory(cat)
		}
		if dishes == nil {
			dishes = []catalog.Dish{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dishesResponse{Dishes: dishes})
	}
}
