// Package events publishes table activity to a message queue for
// downstream consumers (analytics, moderation). Publishing is strictly
// best effort: a missing or unreachable broker never affects gameplay.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const queueName = "table.events"

// TableEvent is the queue payload for every published event type.
type TableEvent struct {
	Table      string `json:"table"`
	Type       string `json:"type"`
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	SeatIndex  int    `json:"seatIndex"`
	DishID     string `json:"dishId,omitempty"`
	DishName   string `json:"dishName,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// Publisher maintains a lazy AMQP connection. A nil *Publisher is valid
// and silently discards everything, so callers never nil-check.
type Publisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// New returns nil when no broker URL is configured.
func New(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

func (p *Publisher) PlayerJoined(table, playerID, playerName string, seat int) {
	p.emit(TableEvent{Table: table, Type: "playerJoined", PlayerID: playerID, PlayerName: playerName, SeatIndex: seat})
}

func (p *Publisher) PlayerLeft(table, playerID, playerName string, seat int) {
	p.emit(TableEvent{Table: table, Type: "playerLeft", PlayerID: playerID, PlayerName: playerName, SeatIndex: seat})
}

func (p *Publisher) DishRemoved(table, playerID, dishID, dishName string) {
	p.emit(TableEvent{Table: table, Type: "dishRemoved", PlayerID: playerID, SeatIndex: -1, DishID: dishID, DishName: dishName})
}

func (p *Publisher) emit(ev TableEvent) {
	if p == nil {
		return
	}
	ev.Timestamp = time.Now().UnixMilli()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.publish(ctx, ev); err != nil {
			log.Warn().Err(err).Str("event", ev.Type).Msg("event publish failed")
		}
	}()
}

func (p *Publisher) publish(ctx context.Context, ev TableEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureChannelLocked(); err != nil {
		return err
	}
	err = p.ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		// Drop the connection so the next publish redials.
		p.closeLocked()
	}
	return err
}

func (p *Publisher) ensureChannelLocked() error {
	if p.ch != nil {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
