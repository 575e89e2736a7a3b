/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noWait bool

// makeCmd represents the make command
var makeCmd = &cobra.Command{
	Use:   "make DRINK",
	Short: "Pour a drink from the menu",
	Args:  cobra.ExactArgs(1),
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
		plan, err := s.rig.MakeDrink(s.ctx, strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s will take %ds\n", plan.Recipe, plan.DrinkDuration)
		if noWait {
			return nil
		}
		select {
		case <-plan.Done():
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is ready\n", plan.Recipe)
		case <-s.ctx.Done():
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(makeCmd)
	makeCmd.Flags().BoolVar(&noWait, "no-wait", false, "return as soon as the pours are scheduled")
}
