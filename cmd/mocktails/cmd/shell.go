/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"github.com/jt05610/mocktails/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive console for making drinks and priming pumps",
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
		_, err = tea.NewProgram(tui.New(s.ctx, s.rig)).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
