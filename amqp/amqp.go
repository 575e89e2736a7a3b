package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jt05610/mocktails/env"
	amqp "github.com/rabbitmq/amqp091-go"
	"strings"
)

const (
	MakeDrink  = "make"
	PrimeStart = "prime"
	PrimeEnd   = "unprime"
	ListMenu   = "menu"
)

var ErrInvalidRoutingKey = errors.New("invalid routing key")

// Command is a request addressed to the rig, routed as <device>.commands.<name>.
type Command struct {
	ID     string `json:"-"`
	To     string `json:"-"`
	Name   string `json:"-"`
	Recipe string `json:"recipe,omitempty"`
	Bottle *int   `json:"bottle,omitempty"`
}

type CommandService struct{}

func (a *CommandService) Load(_ context.Context, data amqp.Delivery) (*Command, error) {
	sk := strings.Split(data.RoutingKey, ".")
	if len(sk) != 3 || sk[1] != "commands" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoutingKey, data.RoutingKey)
	}
	res := &Command{
		To:   sk[0],
		Name: sk[2],
	}
	if data.Headers != nil {
		if id, ok := data.Headers["x-event-id"].(string); ok {
			res.ID = id
		}
	}
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if len(data.Body) == 0 {
		return res, nil
	}
	return res, json.Unmarshal(data.Body, res)
}

// Event is the rig's reply to a command, routed as <device>.events.<name>.
type Event struct {
	ID   string
	Name string
	Data interface{}
}

func (e *Event) RoutingKey(deviceID string) string {
	return deviceID + ".events." + e.Name
}

type EventService struct{}

func (a *EventService) Flush(_ context.Context, event *Event) (amqp.Publishing, error) {
	bytes, err := json.Marshal(event.Data)
	if err != nil {
		var zero amqp.Publishing
		return zero, err
	}
	headers := amqp.Table{
		"x-event-name": event.Name,
		"x-event-id":   event.ID,
	}
	return amqp.Publishing{
		Body:         bytes,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Headers:      headers,
	}, nil
}

type Connection struct {
	*amqp.Connection
	*amqp.Channel
}

func (c *Connection) Close() error {
	if c.Channel != nil {
		err := c.Channel.Close()
		if err != nil {
			return err
		}
	}
	return c.Connection.Close()
}

func Dial(environ *env.Environment) (*Connection, error) {
	conn, err := amqp.Dial(environ.URI)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &Connection{conn, ch}, nil
}
