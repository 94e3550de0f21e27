package db

import (
	"context"
	"testing"

	"hotpot-server/internal/entities"
)

func sampleState() *entities.GameState {
	state := entities.NewGameState()
	state.Seats[0].Player = &entities.Player{ID: "p1", Name: "one", JoinedAt: 1000}
	state.Seats[3].Player = &entities.Player{ID: "p2", Name: "two", JoinedAt: 2000, Message: "好吃！", MessageTime: 2500}
	state.Dishes = []entities.Dish{
		{ID: "dish_a", Name: "毛肚", CookingTime: 15000, PotType: entities.PotSpicy, AddedBy: "p1", AddedAt: 1500},
		{ID: "dish_b", Name: "宽粉", CookingTime: 60000, PotType: entities.PotMild, AddedBy: "p2", AddedAt: 2500},
	}
	return state
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "t1", sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx, "t1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("load returned nil for saved table")
	}

	if len(got.Seats) != entities.SeatCount {
		t.Fatalf("seat count %d", len(got.Seats))
	}
	if p := got.Seats[0].Player; p == nil || p.ID != "p1" {
		t.Fatalf("seat 0 occupant %+v", got.Seats[0].Player)
	}
	if p := got.Seats[3].Player; p == nil || p.ID != "p2" {
		t.Fatalf("seat 3 occupant %+v", got.Seats[3].Player)
	}
	if got.Seats[1].Player != nil {
		t.Fatal("empty seat restored occupied")
	}

	ids := map[string]bool{}
	for _, d := range got.Dishes {
		ids[d.ID] = true
	}
	if len(ids) != 2 || !ids["dish_a"] || !ids["dish_b"] {
		t.Fatalf("dish set %v", ids)
	}

	// Chat bubbles are transient; a restored snapshot starts without
	// them since their expiry timers did not survive.
	if got.Seats[3].Player.Message != "" {
		t.Fatal("transient message survived restore")
	}
}

func TestLoadMissingTable(t *testing.T) {
	store := NewMemoryStore()
	got, err := store.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Fatal("missing table produced a state")
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	if _, err := decodeSnapshot([]byte(`{"version":99,"state":{"seats":[],"dishes":[]}}`)); err == nil {
		t.Fatal("unknown version accepted")
	}
	if _, err := decodeSnapshot([]byte(`not json`)); err == nil {
		t.Fatal("garbage accepted")
	}
	if _, err := decodeSnapshot([]byte(`{"version":1}`)); err == nil {
		t.Fatal("empty state accepted")
	}
}
