/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// primeCmd represents the prime command
var primeCmd = &cobra.Command{
	Use:   "prime BOTTLE",
	Short: "Run one pump until enter is pressed, to fill its tubing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		bottle, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad bottle %q: %w", args[0], err)
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
		if err := s.rig.PrimeStart(bottle); err != nil {
			return err
		}
		defer s.rig.PrimeEnd()
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Priming bottle %d, press enter to stop\n", bottle)
		entered := make(chan struct{})
		go func() {
			defer close(entered)
			_, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		}()
		select {
		case <-entered:
		case <-s.ctx.Done():
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(primeCmd)
}
