package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
)

var (
	acArmor     string
	acDex       int
	acShield    bool
	acUnarmored string
	acAbility   int
	acEntity    string
	acJSON      bool
)

var acCmd = &cobra.Command{
	Use:   "ac",
	Short: "Calculate armor class",
	Long: `Calculate armor class from the armor worn, the dexterity modifier and a shield.

Without armor, barbarians add their constitution modifier and monks add
their wisdom modifier through Unarmored Defense. Pass the class with
--unarmored and the modifier with --ability.`,
	Example: `  rpg-stats ac --armor half-plate --dex 3 --shield
  rpg-stats ac --dex 2 --unarmored monk --ability 3`,
	Args: cobra.NoArgs,
	RunE: runArmorClass,
}

func init() {
	acCmd.Flags().StringVar(&acArmor, "armor", "none", "Armor worn, e.g. leather, chain-shirt, plate")
	acCmd.Flags().IntVar(&acDex, "dex", 0, "Dexterity modifier")
	acCmd.Flags().BoolVar(&acShield, "shield", false, "Using a shield")
	acCmd.Flags().StringVar(&acUnarmored, "unarmored", "none", "Unarmored Defense: barbarian, monk or none")
	acCmd.Flags().IntVar(&acAbility, "ability", 0, "Constitution (barbarian) or wisdom (monk) modifier for Unarmored Defense")
	acCmd.Flags().StringVar(&acEntity, "entity", "", "Character ID to attach to the result")
	acCmd.Flags().BoolVar(&acJSON, "json", false, "Output in JSON format")
}

func runArmorClass(cmd *cobra.Command, _ []string) error {
	input, err := armorClassInput()
	if err != nil {
		return err
	}

	return withService(func(ctx context.Context, service stats.Service) error {
		output, err := service.CalculateArmorClass(ctx, input)
		if err != nil {
			return err
		}

		if acJSON {
			return writeJSON(cmd.OutOrStdout(), armorClassJSON(output))
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderArmorClass(output))
		return err
	})
}

func armorClassInput() (*stats.CalculateArmorClassInput, error) {
	armor, err := dnd5e.ParseArmor(acArmor)
	if err != nil {
		return nil, err
	}

	unarmored, err := dnd5e.ParseUnarmoredDefense(acUnarmored, acAbility)
	if err != nil {
		return nil, err
	}
	if !unarmored.IsNone() && armor != dnd5e.ArmorNone {
		return nil, errors.InvalidArgumentf("--unarmored %s only applies without armor, got --armor %s", acUnarmored, acArmor)
	}

	return &stats.CalculateArmorClassInput{
		EntityID:         acEntity,
		Armor:            armor,
		DexModifier:      acDex,
		Shield:           dnd5e.Shield(acShield),
		UnarmoredDefense: unarmored,
	}, nil
}
