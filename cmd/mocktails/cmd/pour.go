/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var delay int

// pourCmd represents the pour command
var pourCmd = &cobra.Command{
	Use:   "pour BOTTLE SECONDS",
	Short: "Open one bottle's relay for a number of seconds",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		bottle, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad bottle %q: %w", args[0], err)
		}
		seconds, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad duration %q: %w", args[1], err)
		}
		s, err := open(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if cerr := s.Close(); err == nil {
				err = cerr
			}
		}()
		return s.rig.TriggerPour(s.ctx, bottle, seconds, delay)
	},
}

func init() {
	rootCmd.AddCommand(pourCmd)
	pourCmd.Flags().IntVarP(&delay, "delay", "d", 0, "seconds to wait before opening the relay")
}
