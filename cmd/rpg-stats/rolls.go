package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
)

var (
	rollsEntity  string
	rollsContext string
	rollsJSON    bool
)

var rollsCmd = &cobra.Command{
	Use:   "rolls",
	Short: "Show or clear recorded hit point rolls",
	Long: `Show or clear the rolls recorded for a character.

Rolls are recorded by "hp --method rolled --entity <id>" when a Redis URL
is configured, and expire after RPG_STATS_ROLL_TTL.`,
}

var showRollsCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recorded rolls",
	Args:  cobra.NoArgs,
	RunE:  runShowRolls,
}

var clearRollsCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear recorded rolls",
	Args:  cobra.NoArgs,
	RunE:  runClearRolls,
}

func init() {
	rollsCmd.PersistentFlags().StringVar(&rollsEntity, "entity", "", "Character ID (required)")
	rollsCmd.PersistentFlags().StringVar(&rollsContext, "context", stats.ContextHitPoints, "Roll context")
	showRollsCmd.Flags().BoolVar(&rollsJSON, "json", false, "Output in JSON format")

	rollsCmd.AddCommand(showRollsCmd)
	rollsCmd.AddCommand(clearRollsCmd)
}

func requireEntity() error {
	if rollsEntity == "" {
		return errors.InvalidArgument("--entity is required")
	}
	return nil
}

func runShowRolls(cmd *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	return withService(func(ctx context.Context, service stats.Service) error {
		output, err := service.GetRollLog(ctx, &stats.GetRollLogInput{
			EntityID: rollsEntity,
			Context:  rollsContext,
		})
		if err != nil {
			return err
		}

		if rollsJSON {
			return writeJSON(cmd.OutOrStdout(), output.Session)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderRollLog(output.Session))
		return err
	})
}

func runClearRolls(cmd *cobra.Command, _ []string) error {
	if err := requireEntity(); err != nil {
		return err
	}

	return withService(func(ctx context.Context, service stats.Service) error {
		output, err := service.ClearRollLog(ctx, &stats.ClearRollLogInput{
			EntityID: rollsEntity,
			Context:  rollsContext,
		})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d rolls for %s\n", output.RollsDeleted, rollsEntity)
		return err
	})
}
