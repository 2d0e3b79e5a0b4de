package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
)

var (
	hpClass     string
	hpHitDice   string
	hpName      string
	hpLevel     int
	hpCon       int
	hpTough     bool
	hpHillDwarf bool
	hpMethod    string
	hpEntity    string
	hpJSON      bool
)

var hpCmd = &cobra.Command{
	Use:   "hp",
	Short: "Calculate maximum hit points",
	Long: `Calculate maximum hit points for a class and level.

First level always takes the full hit die. Later levels either take the
average (half the die rounded up, plus one) or roll the die. A homebrew
class is given by its hit die with --hit-dice instead of --class.

With a roll log configured and --entity set, rolled results are recorded
and can be read back with the rolls subcommand.`,
	Example: `  rpg-stats hp --class fighter --level 5 --con 2
  rpg-stats hp --class wizard --level 3 --tough --method rolled --entity gandalf
  rpg-stats hp --hit-dice d7 --name Gunslinger --level 4`,
	Args: cobra.NoArgs,
	RunE: runHitPoints,
}

func init() {
	hpCmd.Flags().StringVar(&hpClass, "class", "", "Class, e.g. barbarian, fighter, wizard")
	hpCmd.Flags().StringVar(&hpHitDice, "hit-dice", "", "Hit die of a homebrew class, e.g. d8 or 7")
	hpCmd.Flags().StringVar(&hpName, "name", "", "Name of a homebrew class")
	hpCmd.Flags().IntVar(&hpLevel, "level", 1, "Character level")
	hpCmd.Flags().IntVar(&hpCon, "con", 0, "Constitution modifier")
	hpCmd.Flags().BoolVar(&hpTough, "tough", false, "Has the Tough feat")
	hpCmd.Flags().BoolVar(&hpHillDwarf, "hill-dwarf", false, "Is a hill dwarf")
	hpCmd.Flags().StringVar(&hpMethod, "method", "", "average or rolled (default from RPG_STATS_HP_METHOD)")
	hpCmd.Flags().StringVar(&hpEntity, "entity", "", "Character ID to record rolls under")
	hpCmd.Flags().BoolVar(&hpJSON, "json", false, "Output in JSON format")
}

func runHitPoints(cmd *cobra.Command, _ []string) error {
	input, err := hitPointsInput()
	if err != nil {
		return err
	}

	return withService(func(ctx context.Context, service stats.Service) error {
		output, err := service.CalculateHitPoints(ctx, input)
		if err != nil {
			return err
		}

		if hpJSON {
			return writeJSON(cmd.OutOrStdout(), hitPointsJSON(input, output))
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderHitPoints(input, output))
		return err
	})
}

func hitPointsInput() (*stats.CalculateHitPointsInput, error) {
	class, err := hitPointsClass()
	if err != nil {
		return nil, err
	}

	method := cfg.Method()
	if hpMethod != "" {
		method, err = dnd5e.ParseHPMethod(hpMethod)
		if err != nil {
			return nil, err
		}
	}

	return &stats.CalculateHitPointsInput{
		EntityID:    hpEntity,
		Class:       class,
		Level:       hpLevel,
		ConModifier: hpCon,
		Tough:       hpTough,
		HillDwarf:   hpHillDwarf,
		Method:      method,
	}, nil
}

func hitPointsClass() (dnd5e.Class, error) {
	if hpHitDice == "" {
		if hpClass == "" {
			return dnd5e.Class{}, errors.InvalidArgument("--class or --hit-dice is required")
		}
		if hpName != "" {
			return dnd5e.Class{}, errors.InvalidArgument("--name only applies to a homebrew class given by --hit-dice")
		}
		return dnd5e.ParseClass(hpClass)
	}

	classID := dnd5e.ClassID(strings.ToLower(strings.TrimSpace(hpClass)))
	if classID != "" && classID != dnd5e.ClassHomebrew {
		return dnd5e.Class{}, errors.InvalidArgumentf("--hit-dice is only for homebrew classes, got --class %s", hpClass)
	}
	dice, err := dnd5e.ParseHitDice(hpHitDice)
	if err != nil {
		return dnd5e.Class{}, err
	}
	return dnd5e.HomebrewClass(hpName, dice)
}
