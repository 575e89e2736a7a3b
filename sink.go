package mocktails

import (
	"go.uber.org/zap"
	"sync"
)

// Sink accepts commands for the relay board. Writes are fire and forget.
type Sink interface {
	Send(cmd Command) error
}

// MemorySink records every command it is sent.
type MemorySink struct {
	mu       sync.Mutex
	commands []Command
	sent     chan Command
}

func NewMemorySink() *MemorySink {
	return &MemorySink{sent: make(chan Command, 1024)}
}

func (s *MemorySink) Send(cmd Command) error {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
	select {
	case s.sent <- cmd:
	default:
	}
	return nil
}

// Sent receives each command as it arrives, as long as the reader keeps up.
func (s *MemorySink) Sent() <-chan Command {
	return s.sent
}

func (s *MemorySink) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]Command, len(s.commands))
	copy(ret, s.commands)
	return ret
}

// LogSink writes commands to a logger instead of hardware.
type LogSink struct {
	Logger *zap.Logger
}

func (s *LogSink) Send(cmd Command) error {
	s.Logger.Info("Serial sending", zap.Stringer("command", cmd))
	return nil
}

var (
	_ Sink = (*MemorySink)(nil)
	_ Sink = (*LogSink)(nil)
)
