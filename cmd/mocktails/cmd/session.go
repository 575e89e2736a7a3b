/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"context"
	"errors"
	"github.com/jt05610/mocktails"
	"github.com/jt05610/mocktails/comm/serial"
	"github.com/jt05610/mocktails/couch"
	"github.com/jt05610/mocktails/env"
	"github.com/jt05610/mocktails/rig"
	"github.com/jt05610/mocktails/yaml"
	"go.uber.org/zap"
	"io"
	"time"
)

// session is everything a command needs to run the rig.
type session struct {
	env     *env.Environment
	logger  *zap.Logger
	rig     *rig.Rig
	closers []io.Closer
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan error
}

func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadEnv() (*env.Environment, error) {
	if envFile != "" {
		return env.LoadEnv(envFile)
	}
	return env.LoadEnv()
}

func loadMenu(environ *env.Environment) (mocktails.Menu, error) {
	srv := &yaml.Service{}
	path := menuFile
	if path == "" {
		path = environ.MenuFile
	}
	if path == "" {
		return srv.Default()
	}
	return srv.Open(path)
}

// open loads the configuration, connects to the relay board and starts the serial writer.
func open(ctx context.Context) (*session, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	environ, err := loadEnv()
	if err != nil {
		return nil, err
	}
	if err := environ.Pour().Validate(); err != nil {
		return nil, err
	}
	menu, err := loadMenu(environ)
	if err != nil {
		return nil, err
	}
	s := &session{env: environ, logger: logger}
	var sink mocktails.Sink
	if dryRun || environ.DryRun {
		sink = &mocktails.LogSink{Logger: logger.Named("serial")}
	} else {
		port, err := serial.OpenPort(environ.SerialPort, environ.Baud)
		if err != nil {
			return nil, err
		}
		logger.Info("Opened serial port", zap.String("port", environ.SerialPort), zap.Int("baud", environ.Baud))
		s.closers = append(s.closers, port)
		sink = port
	}
	s.rig = rig.New(sink, menu, environ.Pour(), logger)
	if environ.CouchURI != "" {
		j, err := couch.Open(environ.CouchURI, environ.CouchDB)
		if err != nil {
			s.closeAll()
			return nil, err
		}
		s.closers = append(s.closers, j)
		s.rig.Scheduler.Journal = j
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan error, 1)
	go func() {
		s.done <- s.rig.Run(s.ctx)
	}()
	return s, nil
}

func (s *session) closeAll() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			s.logger.Error("Failed to close", zap.Error(err))
		}
	}
}

// Close lets queued commands reach the board, stops the rig and releases the port.
func (s *session) Close() error {
	if s.ctx.Err() == nil {
		ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
		if err := s.rig.Settle(ctx); err != nil {
			s.logger.Warn("Commands still queued at shutdown", zap.Error(err))
		}
		cancel()
	}
	s.cancel()
	err := <-s.done
	s.closeAll()
	_ = s.logger.Sync()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
