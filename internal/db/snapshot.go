package db

import (
	"context"
	"encoding/json"
	"fmt"

	"hotpot-server/internal/entities"
)

// snapshotVersion tags the serialized layout so the format can evolve.
const snapshotVersion = 1

// SnapshotStore persists one GameState record per table key. Saves are
// write-behind and best effort: the coordinator never waits on them and
// a failed save never rolls back in-memory state.
type SnapshotStore interface {
	// Load returns the stored state for a table, or (nil, nil) when no
	// snapshot exists yet.
	Load(ctx context.Context, tableID string) (*entities.GameState, error)
	Save(ctx context.Context, tableID string, state *entities.GameState) error
}

type snapshotEnvelope struct {
	Version int                 `json:"version"`
	State   *entities.GameState `json:"state"`
}

func encodeSnapshot(state *entities.GameState) ([]byte, error) {
	return json.Marshal(snapshotEnvelope{Version: snapshotVersion, State: state})
}

func decodeSnapshot(data []byte) (*entities.GameState, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("decode snapshot: unsupported version %d", env.Version)
	}
	if env.State == nil {
		return nil, fmt.Errorf("decode snapshot: empty state")
	}
	env.State.Normalize()
	return env.State, nil
}
