/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"github.com/jt05610/mocktails/amqp"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Take orders from RabbitMQ",
	Long: `serve binds a queue to <DEVICE_ID>.commands.{make,prime,unprime,menu} on AMQP_EXCHANGE
and replies on <DEVICE_ID>.events.<name>.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		s, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); err == nil {
				err = cerr
			}
		}()
		conn, err := amqp.Dial(s.env)
		if err != nil {
			return err
		}
		s.logger.Info("Connected to RabbitMQ", zap.String("uri", s.env.URI))
		defer func() {
			if err := conn.Close(); err != nil {
				s.logger.Error("Failed to close connection", zap.Error(err))
			}
		}()
		srv, err := amqp.New(conn.Channel, s.env.Exchange, s.env.DeviceID, s.rig, s.logger.Named("amqp"))
		if err != nil {
			return err
		}
		s.logger.Info("Started 🐰 server")
		return srv.Listen(s.ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
