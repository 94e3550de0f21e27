package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"hotpot-server/internal/core"
)

var upgrader = websocket.Upgrader{
	// Tables are open to any origin; identity is self-asserted.
	CheckOrigin: func(*http.Request) bool { return true },
}

// WsHandler upgrades the connection, attaches a session to the table
// named in the path, and pumps inbound frames into its coordinator.
func WsHandler(registry *core.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID := mux.Vars(r)["id"]
		if tableID == "" {
			http.Error(w, "table id required", http.StatusBadRequest)
			return
		}

		socket, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		defer socket.Close()

		table := registry.Get(tableID)
		session := core.NewSession(socket)
		table.Attach(session)
		defer table.Detach(session)

		for {
			_, frame, err := socket.ReadMessage()
			if err != nil {
				log.Debug().Err(err).Str("table", tableID).Msg("connection closed")
				return
			}
			table.Dispatch(session, frame)
		}
	}
}
