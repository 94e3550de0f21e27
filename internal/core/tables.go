package core

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"hotpot-server/internal/catalog"
	"hotpot-server/internal/db"
	"hotpot-server/internal/entities"
	"hotpot-server/internal/events"
)

// Registry maps table keys to live coordinators. Tables are created on
// first use and live until the process is recycled; an empty table keeps
// its state so late joiners find the pot as it was left.
type Registry struct {
	mu     sync.Mutex
	tables map[string]*tableEntry

	store  db.SnapshotStore
	menu   *catalog.Catalog
	events *events.Publisher
}

// tableEntry defers restore to first access while keeping it
// once-per-key. Concurrent Gets for the same key wait on the Once;
// other keys are untouched because the registry lock is only held for
// the map lookup.
type tableEntry struct {
	once  sync.Once
	table *Table
}

func NewRegistry(store db.SnapshotStore, menu *catalog.Catalog, pub *events.Publisher) *Registry {
	return &Registry{
		tables: make(map[string]*tableEntry),
		store:  store,
		menu:   menu,
		events: pub,
	}
}

// Get returns the coordinator for a table key, restoring its snapshot
// from storage on first access. A slow restore for one table never
// blocks access to another.
func (r *Registry) Get(tableID string) *Table {
	r.mu.Lock()
	e, ok := r.tables[tableID]
	if !ok {
		e = &tableEntry{}
		r.tables[tableID] = e
	}
	r.mu.Unlock()

	e.once.Do(func() {
		t := newTable(tableID, r.loadState(tableID), r.store, r.menu, r.events)
		rearmCookTimers(t)
		t.start()
		e.table = t
	})
	return e.table
}

// Menu exposes the catalog the registry's tables serve.
func (r *Registry) Menu() *catalog.Catalog {
	return r.menu
}

func (r *Registry) loadState(tableID string) *entities.GameState {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	state, err := r.store.Load(ctx, tableID)
	if err != nil {
		log.Error().Err(err).Str("table", tableID).Msg("snapshot load failed, starting fresh")
		return entities.NewGameState()
	}
	if state == nil {
		return entities.NewGameState()
	}
	state.Normalize()
	log.Info().Str("table", tableID).Int("dishes", len(state.Dishes)).Int("players", state.Occupied()).Msg("snapshot restored")
	return state
}

// rearmCookTimers replays no history: readiness is recomputed from the
// persisted addedAt, and a timer is armed only for dishes still cooking,
// for their remaining duration. Must run before the command loop starts.
func rearmCookTimers(t *Table) {
	nowMS := t.now().UnixMilli()
	for _, dish := range t.state.Dishes {
		remaining := dish.CookingTime - (nowMS - dish.AddedAt)
		if remaining <= 0 {
			continue
		}
		t.armCookTimer(dish.ID, dish.Name, time.Duration(remaining)*time.Millisecond)
	}
}
