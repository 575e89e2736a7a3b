/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "List the drinks on the menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		environ, err := loadEnv()
		if err != nil {
			return err
		}
		menu, err := loadMenu(environ)
		if err != nil {
			return err
		}
		for _, name := range menu.Names() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), menu[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
