package amqp

import (
	"context"
	"errors"
	"github.com/jt05610/mocktails"
	"github.com/jt05610/mocktails/pour"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrUnknownCommand = errors.New("unknown command")

// Bar is what the server drives. *rig.Rig satisfies it.
type Bar interface {
	MakeDrink(ctx context.Context, name string) (*pour.Plan, error)
	PrimeStart(bottle int) error
	PrimeEnd() (int, bool)
	Menu() mocktails.Menu
}

type Server struct {
	ch       *amqp.Channel
	q        amqp.Queue
	bar      Bar
	cmd      *CommandService
	event    *EventService
	exchange string
	deviceID string
	logger   *zap.Logger
}

var commands = []string{MakeDrink, PrimeStart, PrimeEnd, ListMenu}

// New declares the exchange and binds a private queue to every command the rig accepts.
func New(ch *amqp.Channel, exchange string, deviceID string, bar Bar, logger *zap.Logger) (*Server, error) {
	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		false,    // durable
		false,    // delete when unused
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, err
	}
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	for _, name := range commands {
		key := deviceID + ".commands." + name
		err := ch.QueueBind(
			q.Name,   // queue name
			key,      // routing key
			exchange, // exchange
			false,
			nil)
		if err != nil {
			return nil, err
		}
	}
	return NewHandler(bar, exchange, deviceID, logger).withChannel(ch, q), nil
}

// NewHandler builds a server that is not attached to a broker. Only Handle may be used on it.
func NewHandler(bar Bar, exchange string, deviceID string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		bar:      bar,
		cmd:      &CommandService{},
		event:    &EventService{},
		exchange: exchange,
		deviceID: deviceID,
		logger:   logger,
	}
}

func (s *Server) withChannel(ch *amqp.Channel, q amqp.Queue) *Server {
	s.ch = ch
	s.q = q
	return s
}

type errorData struct {
	Command string `json:"command"`
	Error   string `json:"error"`
}

type primeData struct {
	Bottle int `json:"bottle"`
}

func (s *Server) fail(cmd *Command, err error) *Event {
	s.logger.Warn("command failed", zap.String("command", cmd.Name), zap.String("id", cmd.ID), zap.Error(err))
	return &Event{
		ID:   cmd.ID,
		Name: "error",
		Data: &errorData{Command: cmd.Name, Error: err.Error()},
	}
}

// Handle runs one command against the bar and returns the event to publish in reply.
func (s *Server) Handle(ctx context.Context, cmd *Command) *Event {
	switch cmd.Name {
	case MakeDrink:
		plan, err := s.bar.MakeDrink(ctx, cmd.Recipe)
		if err != nil {
			return s.fail(cmd, err)
		}
		return &Event{ID: cmd.ID, Name: "pouring", Data: plan}
	case PrimeStart:
		if cmd.Bottle == nil {
			return s.fail(cmd, mocktails.ErrInvalidBottle)
		}
		if err := s.bar.PrimeStart(*cmd.Bottle); err != nil {
			return s.fail(cmd, err)
		}
		return &Event{ID: cmd.ID, Name: "priming", Data: &primeData{Bottle: *cmd.Bottle}}
	case PrimeEnd:
		bottle, ok := s.bar.PrimeEnd()
		if !ok {
			return &Event{ID: cmd.ID, Name: "primed", Data: struct{}{}}
		}
		return &Event{ID: cmd.ID, Name: "primed", Data: &primeData{Bottle: bottle}}
	case ListMenu:
		return &Event{ID: cmd.ID, Name: "menu", Data: s.bar.Menu()}
	}
	return s.fail(cmd, ErrUnknownCommand)
}

// Listen consumes commands until ctx is done. Pours started by a command outlive the delivery that asked for them
// and are bound to ctx.
func (s *Server) Listen(ctx context.Context) error {
	msgs, err := s.ch.Consume(
		s.q.Name, // queue
		"",       // consumer
		false,    // auto-ack
		false,    // exclusive
		false,    // no-local
		false,    // no-wait
		nil,      // args
	)
	if err != nil {
		return err
	}
	s.logger.Info("Listening for commands", zap.String("exchange", s.exchange), zap.String("device", s.deviceID))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Closing connection")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return amqp.ErrClosed
			}
			s.deliver(ctx, d)
		}
	}
}

func (s *Server) deliver(ctx context.Context, d amqp.Delivery) {
	defer func() {
		if err := d.Ack(false); err != nil {
			s.logger.Error("Failed to ack", zap.Error(err))
		}
	}()
	cmd, err := s.cmd.Load(ctx, d)
	if err != nil {
		s.logger.Error("Failed to load command", zap.String("routing_key", d.RoutingKey), zap.Error(err))
		return
	}
	s.logger.Info("Received command", zap.String("command", cmd.Name), zap.String("id", cmd.ID))
	event := s.Handle(ctx, cmd)
	resp, err := s.event.Flush(ctx, event)
	if err != nil {
		s.logger.Error("Failed to flush event", zap.Error(err))
		return
	}
	err = s.ch.PublishWithContext(ctx,
		s.exchange,
		event.RoutingKey(s.deviceID),
		false,
		false,
		resp,
	)
	if err != nil {
		s.logger.Error("Failed to publish event response", zap.Error(err))
	}
}
