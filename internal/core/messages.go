package core

import "encoding/json"

// Every frame in both directions is a typed envelope.

// Inbound message types.
const (
	MsgJoin        = "join"
	MsgAddDish     = "addDish"
	MsgRemoveDish  = "removeDish"
	MsgSendMessage = "sendMessage"
)

// Outbound event types.
const (
	EventDishesData   = "dishesData"
	EventGameState    = "gameState"
	EventPlayerJoined = "playerJoined"
	EventPlayerLeft   = "playerLeft"
	EventDishCooked   = "dishCooked"
	EventDishRemoved  = "dishRemoved"
	EventError        = "error"
)

// Envelope is the decoded shape of an inbound frame. The payload stays
// raw until the type is known.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type joinPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// addDishPayload carries the catalog id the client picked, the
// catalog-derived fields, and the pot choice. ID is the catalog entry
// id, not the id of the dish instance in the pot.
type addDishPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Emoji       string `json:"emoji"`
	CookingTime int64  `json:"cookingTime"`
	Description string `json:"description"`
	Spiciness   int    `json:"spiciness"`
	PotType     string `json:"potType"`
}

type removeDishPayload struct {
	DishID string `json:"dishId"`
}

type sendMessagePayload struct {
	Message string `json:"message"`
}

type playerEventPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	SeatIndex  int    `json:"seatIndex"`
}

type dishCookedPayload struct {
	DishID   string `json:"dishId"`
	DishName string `json:"dishName"`
}

type dishRemovedPayload struct {
	DishID    string `json:"dishId"`
	RemovedBy string `json:"removedBy"`
	Dish      string `json:"dish"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func jsonMarshalEnvelope(eventType string, payload any) ([]byte, error) {
	return json.Marshal(outEnvelope{Type: eventType, Payload: payload})
}
