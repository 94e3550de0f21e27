package core

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Conn is the slice of *websocket.Conn the session needs; tests swap in
// an in-memory implementation.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Session is one live connection to a table. It is unbound until a join
// succeeds, after which it carries the player's identity and seat. The
// identity fields are only touched inside the table's command loop.
type Session struct {
	conn Conn

	writeMu sync.Mutex
	closed  bool

	playerID   string
	playerName string
	seatIndex  int
}

func NewSession(conn Conn) *Session {
	return &Session{conn: conn, seatIndex: -1}
}

func (s *Session) joined() bool {
	return s.playerID != ""
}

func (s *Session) bind(playerID, playerName string, seat int) {
	s.playerID = playerID
	s.playerName = playerName
	s.seatIndex = seat
}

func (s *Session) unbind() {
	s.playerID = ""
	s.playerName = ""
	s.seatIndex = -1
}

// send marshals and writes one envelope. Errors mark the session closed
// so later broadcasts skip it; pruning happens on detach.
func (s *Session) send(eventType string, payload any) {
	frame, err := json.Marshal(outEnvelope{Type: eventType, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("marshal outbound frame")
		return
	}
	s.sendRaw(frame)
}

func (s *Session) sendRaw(frame []byte) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.closed {
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		s.closed = true
	}
}
