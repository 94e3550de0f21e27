// Smoke test for a deployed hotpot server: checks the HTTP listing,
// joins a table over websocket, cooks one dish end to end, and exits
// non-zero on any failure.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jmcvetta/randutil"

	"hotpot-server/internal/catalog"
	"hotpot-server/internal/core"
	"hotpot-server/internal/entities"
)

var (
	addr    = flag.String("addr", "ws://localhost:8080", "server base url (ws:// or wss://)")
	tableID = flag.String("table", "test-table", "table key to exercise")
	timeout = flag.Duration("timeout", 30*time.Second, "overall deadline")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Println("FAIL:", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func run() error {
	httpBase := strings.Replace(strings.Replace(*addr, "wss://", "https://", 1), "ws://", "http://", 1)
	resp, err := http.Get(httpBase + "/api/tables")
	if err != nil {
		return fmt.Errorf("http check: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http check: status %d", resp.StatusCode)
	}
	fmt.Println("http listing ok")

	conn, _, err := websocket.DefaultDialer.Dial(*addr+"/table/"+*tableID, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	frames := make(chan core.Envelope, 64)
	go func() {
		defer close(frames)
		for {
			var env core.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			frames <- env
		}
	}()

	deadline := time.After(*timeout)
	suffix, err := randutil.AlphaString(6)
	if err != nil {
		return err
	}
	playerID := "smoke-" + suffix

	if err := send(conn, "join", map[string]any{
		"playerId":   playerID,
		"playerName": "smoketest",
	}); err != nil {
		return err
	}

	var menu []catalog.Dish
	if err := waitFor(frames, deadline, "dishesData", &menu); err != nil {
		return err
	}
	fmt.Printf("catalog ok, %d dishes\n", len(menu))

	if err := waitFor(frames, deadline, "gameState", nil); err != nil {
		return err
	}
	fmt.Println("joined, game state synced")

	idx, err := randutil.IntRange(0, len(menu))
	if err != nil {
		return err
	}
	dish := menu[idx]
	// Keep the smoke run short regardless of which dish came up.
	if err := send(conn, "addDish", map[string]any{
		"name":        dish.Name,
		"category":    dish.Category,
		"price":       dish.Price,
		"emoji":       dish.Emoji,
		"cookingTime": 3000,
		"potType":     "mild",
	}); err != nil {
		return err
	}

	var state entities.GameState
	if err := waitFor(frames, deadline, "gameState", &state); err != nil {
		return err
	}
	dishID := ""
	for _, d := range state.Dishes {
		if d.AddedBy == playerID {
			dishID = d.ID
		}
	}
	if dishID == "" {
		return fmt.Errorf("added dish not present in game state")
	}
	fmt.Println("dish added:", dish.Name)

	msg, err := randutil.ChoiceString(catalog.QuickMessages())
	if err != nil {
		return err
	}
	if err := send(conn, "sendMessage", map[string]any{"message": msg}); err != nil {
		return err
	}

	if err := waitFor(frames, deadline, "dishCooked", nil); err != nil {
		return err
	}
	fmt.Println("dish cooked")

	if err := send(conn, "removeDish", map[string]any{"dishId": dishID}); err != nil {
		return err
	}
	if err := waitFor(frames, deadline, "dishRemoved", nil); err != nil {
		return err
	}
	fmt.Println("dish removed")
	return nil
}

func send(conn *websocket.Conn, msgType string, payload any) error {
	return conn.WriteJSON(map[string]any{"type": msgType, "payload": payload})
}

// waitFor discards frames until one of the wanted type arrives, then
// optionally decodes its payload into out.
func waitFor(frames <-chan core.Envelope, deadline <-chan time.Time, want string, out any) error {
	for {
		select {
		case env, ok := <-frames:
			if !ok {
				return fmt.Errorf("connection closed waiting for %s", want)
			}
			if env.Type == "error" {
				return fmt.Errorf("server error waiting for %s: %s", want, string(env.Payload))
			}
			if env.Type != want {
				continue
			}
			if out == nil {
				return nil
			}
			return json.Unmarshal(env.Payload, out)
		case <-deadline:
			return fmt.Errorf("timed out waiting for %s", want)
		}
	}
}
