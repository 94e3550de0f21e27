package entities

// Wire and persistence shapes for one table. Field names follow the
// browser client contract, timestamps are unix milliseconds.

const (
	SeatCount = 7

	PotMild  = "mild"
	PotSpicy = "spicy"

	// DefaultCookingTimeMS applies when an add request carries no cooking time.
	DefaultCookingTimeMS = 30000
)

type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	JoinedAt    int64  `json:"joinedAt"`
	Message     string `json:"message,omitempty"`
	MessageTime int64  `json:"messageTime,omitempty"`
}

type Seat struct {
	Player *Player `json:"player"`
}

type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Price       int    `json:"price,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	CookingTime int64  `json:"cookingTime"`
	Description string `json:"description,omitempty"`
	Spiciness   int    `json:"spiciness,omitempty"`
	PotType     string `json:"potType"`
	AddedBy     string `json:"addedBy"`
	AddedAt     int64  `json:"addedAt"`
}

// GameState is the full authoritative snapshot of one table: a fixed
// seat ring plus the dishes currently in the pot. It is both the unit
// of persistence and the payload of every gameState broadcast.
type GameState struct {
	Seats  []Seat `json:"seats"`
	Dishes []Dish `json:"dishes"`
}

func NewGameState() *GameState {
	return &GameState{
		Seats:  make([]Seat, SeatCount),
		Dishes: []Dish{},
	}
}

// FreeSeat returns the lowest unoccupied seat index, or -1 when full.
func (g *GameState) FreeSeat() int {
	for i := range g.Seats {
		if g.Seats[i].Player == nil {
			return i
		}
	}
	return -1
}

// SeatOf returns the seat index occupied by the given player id, or -1.
func (g *GameState) SeatOf(playerID string) int {
	for i := range g.Seats {
		if p := g.Seats[i].Player; p != nil && p.ID == playerID {
			return i
		}
	}
	return -1
}

// Occupied counts seats with a player in them.
func (g *GameState) Occupied() int {
	n := 0
	for i := range g.Seats {
		if g.Seats[i].Player != nil {
			n++
		}
	}
	return n
}

// DishIndex returns the position of the dish with the given id, or -1.
func (g *GameState) DishIndex(id string) int {
	for i := range g.Dishes {
		if g.Dishes[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the state so a snapshot can be serialized outside
// the coordinator goroutine while the original keeps mutating.
func (g *GameState) Clone() *GameState {
	out := &GameState{
		Seats:  make([]Seat, len(g.Seats)),
		Dishes: make([]Dish, len(g.Dishes)),
	}
	for i := range g.Seats {
		if p := g.Seats[i].Player; p != nil {
			cp := *p
			out.Seats[i].Player = &cp
		}
	}
	copy(out.Dishes, g.Dishes)
	return out
}

// Normalize repairs a snapshot loaded from storage: the seat ring is
// forced back to SeatCount entries and transient chat messages are
// dropped, since their expiry timers do not survive a restart.
func (g *GameState) Normalize() {
	if len(g.Seats) != SeatCount {
		seats := make([]Seat, SeatCount)
		copy(seats, g.Seats)
		g.Seats = seats
	}
	for i := range g.Seats {
		if p := g.Seats[i].Player; p != nil {
			p.Message = ""
			p.MessageTime = 0
		}
	}
	if g.Dishes == nil {
		g.Dishes = []Dish{}
	}
}
