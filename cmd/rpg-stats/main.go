// Package main is the entry point for the rpg-stats command line tool
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

var (
	envFile   string
	logLevel  string
	logFormat string
	redisURL  string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "rpg-stats",
	Short: "D&D 5e armor class and hit point calculator",
	Long: `rpg-stats calculates armor class and maximum hit points for D&D 5e characters.

Run it without a subcommand for an interactive menu, or use the ac and hp
subcommands with flags. When a Redis URL is configured, rolled hit points
are kept in a roll log that the rolls subcommand can show or clear.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.IsCanceled(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Env file to load before reading the environment (default .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", "", "Redis URL for the roll log")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "Request timeout")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	rootCmd.AddCommand(acCmd)
	rootCmd.AddCommand(hpCmd)
	rootCmd.AddCommand(rollsCmd)
}
