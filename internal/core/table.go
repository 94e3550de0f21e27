package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"

	"hotpot-server/internal/catalog"
	"hotpot-server/internal/db"
	"hotpot-server/internal/entities"
	"hotpot-server/internal/events"
)

// messageTTL is how long a chat bubble stays on a seat.
const messageTTL = 3 * time.Second

const saveTimeout = 5 * time.Second

// Table is the authoritative coordinator for one table key. A single
// goroutine drains the command mailbox, so every mutation — inbound
// frame or timer callback — runs to completion before the next one.
type Table struct {
	id     string
	cmds   chan func()
	saves  chan *entities.GameState
	logger zerolog.Logger

	// Everything below is owned by the command loop.
	sessions     []*Session
	state        *entities.GameState
	lastActivity time.Time

	store  db.SnapshotStore
	menu   *catalog.Catalog
	events *events.Publisher

	// Injected for deterministic tests.
	now       func() time.Time
	afterFunc func(d time.Duration, f func())
}

// Status is the read-only view served over HTTP.
type Status struct {
	Players      int       `json:"players"`
	Dishes       int       `json:"dishes"`
	LastActivity time.Time `json:"lastActivity"`
}

func newTable(id string, state *entities.GameState, store db.SnapshotStore, menu *catalog.Catalog, pub *events.Publisher) *Table {
	t := &Table{
		id:        id,
		cmds:      make(chan func(), 64),
		saves:     make(chan *entities.GameState, 1),
		logger:    log.With().Str("table", id).Logger(),
		state:     state,
		store:     store,
		menu:      menu,
		events:    pub,
		now:       time.Now,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
	t.lastActivity = t.now()
	return t
}

// start launches the command and save loops. It is separate from
// newTable so the registry (and tests) can finish wiring before the
// first command runs.
func (t *Table) start() {
	go t.run()
	go t.saveLoop()
}

func (t *Table) run() {
	for cmd := range t.cmds {
		cmd()
	}
}

// do enqueues a command for the table goroutine.
func (t *Table) do(cmd func()) {
	t.cmds <- cmd
}

// Attach registers a fresh, unbound session and sends it the catalog.
func (t *Table) Attach(s *Session) {
	t.do(func() {
		t.sessions = append(t.sessions, s)
		s.send(EventDishesData, t.menu.All())
	})
}

// Detach unregisters a session and vacates its seat if it had joined.
// Detaching a session twice, or one that never joined, changes nothing
// beyond the session list.
func (t *Table) Detach(s *Session) {
	t.do(func() { t.handleDetach(s) })
}

// Status answers a read-only query through the mailbox so it sees a
// consistent snapshot.
func (t *Table) Status() Status {
	reply := make(chan Status, 1)
	t.do(func() {
		reply <- Status{
			Players:      t.state.Occupied(),
			Dishes:       len(t.state.Dishes),
			LastActivity: t.lastActivity,
		}
	})
	return <-reply
}

func (t *Table) handleJoin(s *Session, p joinPayload) {
	if p.PlayerID == "" || p.PlayerName == "" {
		t.logger.Warn().Msg("join without player identity dropped")
		return
	}
	if s.joined() {
		s.send(EventError, errorPayload{Message: "already seated"})
		return
	}
	if t.state.SeatOf(p.PlayerID) >= 0 {
		s.send(EventError, errorPayload{Message: "player already seated at this table"})
		return
	}
	seat := t.state.FreeSeat()
	if seat < 0 {
		s.send(EventError, errorPayload{Message: "table is full"})
		return
	}

	s.bind(p.PlayerID, p.PlayerName, seat)
	t.state.Seats[seat].Player = &entities.Player{
		ID:       p.PlayerID,
		Name:     p.PlayerName,
		JoinedAt: t.now().UnixMilli(),
	}
	t.touch()
	t.persist()
	t.broadcastGameState()
	t.broadcast(EventPlayerJoined, playerEventPayload{
		PlayerID:   p.PlayerID,
		PlayerName: p.PlayerName,
		SeatIndex:  seat,
	})
	t.events.PlayerJoined(t.id, p.PlayerID, p.PlayerName, seat)
	t.logger.Info().Str("player", p.PlayerID).Int("seat", seat).Msg("player joined")
}

func (t *Table) handleAddDish(s *Session, p addDishPayload) {
	if !s.joined() {
		t.logger.Debug().Msg("addDish from unjoined session dropped")
		return
	}

	// A recognized catalog id makes the catalog authoritative for the
	// menu fields; unknown or absent ids pass through as sent, so
	// off-menu dishes still work.
	if entry, ok := t.menu.ByID(p.ID); ok {
		p.Name = entry.Name
		p.Category = entry.Category
		p.Price = entry.Price
		p.Emoji = entry.Emoji
		p.CookingTime = entry.CookingTime
		p.Description = entry.Description
		p.Spiciness = entry.Spiciness
	}

	pot := p.PotType
	if pot != entities.PotSpicy {
		pot = entities.PotMild
	}
	cookingTime := p.CookingTime
	if cookingTime <= 0 {
		cookingTime = entities.DefaultCookingTimeMS
	}
	dish := entities.Dish{
		ID:          "dish_" + uuid.NewString(),
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Emoji:       p.Emoji,
		CookingTime: cookingTime,
		Description: p.Description,
		Spiciness:   p.Spiciness,
		PotType:     pot,
		AddedBy:     s.playerID,
		AddedAt:     t.now().UnixMilli(),
	}
	t.state.Dishes = append(t.state.Dishes, dish)
	t.touch()
	t.persist()
	t.broadcastGameState()
	t.armCookTimer(dish.ID, dish.Name, time.Duration(cookingTime)*time.Millisecond)
}

func (t *Table) handleRemoveDish(s *Session, p removeDishPayload) {
	if !s.joined() {
		t.logger.Debug().Msg("removeDish from unjoined session dropped")
		return
	}
	idx := t.state.DishIndex(p.DishID)
	if idx < 0 {
		s.send(EventError, errorPayload{Message: "dish not found"})
		return
	}
	dish := t.state.Dishes[idx]
	elapsed := t.now().UnixMilli() - dish.AddedAt
	if elapsed < dish.CookingTime {
		s.send(EventError, errorPayload{Message: "dish is not ready yet"})
		return
	}

	t.state.Dishes = append(t.state.Dishes[:idx], t.state.Dishes[idx+1:]...)
	t.touch()
	t.persist()
	t.broadcastGameState()
	t.broadcast(EventDishRemoved, dishRemovedPayload{
		DishID:    dish.ID,
		RemovedBy: s.playerID,
		Dish:      dish.Name,
	})
	t.events.DishRemoved(t.id, s.playerID, dish.ID, dish.Name)
}

func (t *Table) handleSendMessage(s *Session, p sendMessagePayload) {
	if !s.joined() || s.seatIndex < 0 {
		return
	}
	player := t.state.Seats[s.seatIndex].Player
	if player == nil {
		return
	}

	player.Message = p.Message
	player.MessageTime = t.now().UnixMilli()
	t.touch()
	t.persist()
	t.broadcastGameState()

	// The expiry callback clears the bubble only if this exact episode
	// is still the latest one; a newer sendMessage restarts the window.
	seat := s.seatIndex
	playerID := player.ID
	episode := player.MessageTime
	t.afterFunc(messageTTL, func() {
		t.do(func() {
			pl := t.state.Seats[seat].Player
			if pl == nil || pl.ID != playerID || pl.MessageTime != episode {
				return
			}
			pl.Message = ""
			pl.MessageTime = 0
			t.broadcastGameState()
		})
	})
}

func (t *Table) handleDetach(s *Session) {
	for i, other := range t.sessions {
		if other == s {
			t.sessions = append(t.sessions[:i], t.sessions[i+1:]...)
			break
		}
	}
	if !s.joined() || s.seatIndex < 0 {
		return
	}

	playerID, playerName, seat := s.playerID, s.playerName, s.seatIndex
	t.state.Seats[seat].Player = nil
	s.unbind()
	t.touch()
	t.persist()
	t.broadcastGameState()
	t.broadcast(EventPlayerLeft, playerEventPayload{
		PlayerID:   playerID,
		PlayerName: playerName,
		SeatIndex:  seat,
	})
	t.events.PlayerLeft(t.id, playerID, playerName, seat)
	t.logger.Info().Str("player", playerID).Int("seat", seat).Msg("player left")
}

// armCookTimer schedules the ready notification. Firing after the dish
// was fished out is a no-op; the dish is never removed by the timer.
func (t *Table) armCookTimer(dishID, dishName string, d time.Duration) {
	t.afterFunc(d, func() {
		t.do(func() {
			if t.state.DishIndex(dishID) < 0 {
				return
			}
			t.broadcast(EventDishCooked, dishCookedPayload{DishID: dishID, DishName: dishName})
		})
	})
}

func (t *Table) broadcastGameState() {
	t.broadcast(EventGameState, t.state)
}

// broadcast fans one event out to every attached session. The fan-out
// finishes before the next command runs, so each session sees events in
// command order even though delivery across sessions is parallel.
func (t *Table) broadcast(eventType string, payload any) {
	frame, err := jsonMarshalEnvelope(eventType, payload)
	if err != nil {
		t.logger.Error().Err(err).Str("event", eventType).Msg("marshal broadcast")
		return
	}
	iter.ForEach(t.sessions, func(s **Session) {
		(*s).sendRaw(frame)
	})
}

// persist queues a deep copy for the save writer without blocking the
// command loop. A snapshot still waiting is replaced: only the latest
// state matters. The command loop is the sole producer, so the
// drain-then-retry below never races another enqueue.
func (t *Table) persist() {
	snap := t.state.Clone()
	for {
		select {
		case t.saves <- snap:
			return
		default:
		}
		select {
		case <-t.saves:
		default:
		}
	}
}

// saveLoop writes queued snapshots one at a time, so an older save can
// never land after a newer one. Failures are logged and otherwise
// ignored.
func (t *Table) saveLoop() {
	for snap := range t.saves {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := t.store.Save(ctx, t.id, snap)
		cancel()
		if err != nil {
			t.logger.Error().Err(err).Msg("snapshot save failed")
		}
	}
}

func (t *Table) touch() {
	t.lastActivity = t.now()
}
