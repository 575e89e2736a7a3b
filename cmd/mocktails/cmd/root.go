/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	envFile  string
	menuFile string
	dryRun   bool
	debug    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mocktails",
	Short: "mocktails pours drinks from a rig of relay controlled pumps",
	Long: `mocktails drives up to eight pumps through a relay board on a serial port.
Recipes give each bottle a relative proportion; the pours overlap so a drink takes
as long as its largest ingredient.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "e", "", "env file to load (default .env)")
	rootCmd.PersistentFlags().StringVarP(&menuFile, "menu", "m", "", "menu file (default MENU_FILE or the built in menu)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "log commands instead of writing to the serial port")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")
}
