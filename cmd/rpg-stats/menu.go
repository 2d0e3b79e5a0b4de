package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
	"github.com/KirkDiggler/rpg-stats/internal/prompt"
)

type tool string

const (
	toolHitPoints  tool = "Calculate HP"
	toolArmorClass tool = "Calculate AC"
)

const otherDice = "Other"

// newAsker is swapped out in tests
var newAsker = defaultAsker

func defaultAsker() prompt.Asker { return prompt.New() }

func runMenu(cmd *cobra.Command, _ []string) error {
	asker := newAsker()

	choice, err := prompt.Select(asker, "What would you like to do?", []tool{toolHitPoints, toolArmorClass})
	if err != nil {
		return err
	}

	switch choice {
	case toolHitPoints:
		input, err := promptHitPoints(asker, cfg.Method())
		if err != nil {
			return err
		}
		return withService(func(ctx context.Context, service stats.Service) error {
			output, err := service.CalculateHitPoints(ctx, input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderHitPoints(input, output))
			return err
		})
	case toolArmorClass:
		input, err := promptArmorClass(asker)
		if err != nil {
			return err
		}
		return withService(func(ctx context.Context, service stats.Service) error {
			output, err := service.CalculateArmorClass(ctx, input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderArmorClass(output))
			return err
		})
	default:
		return errors.Internalf("unknown menu choice %q", choice)
	}
}

func promptArmorClass(a prompt.Asker) (*stats.CalculateArmorClassInput, error) {
	armor, err := prompt.Select(a, "What armor are you wearing?", dnd5e.AllArmor())
	if err != nil {
		return nil, err
	}

	dex, err := prompt.InputMap(a, "What is your dex modifier?", parseModifier)
	if err != nil {
		return nil, err
	}

	unarmored := dnd5e.NoUnarmoredDefense()
	if armor == dnd5e.ArmorNone {
		unarmored, err = promptUnarmoredDefense(a)
		if err != nil {
			return nil, err
		}
	}

	shield, err := a.Confirm("Are you using a shield?")
	if err != nil {
		return nil, err
	}

	return &stats.CalculateArmorClassInput{
		Armor:            armor,
		DexModifier:      dex,
		Shield:           dnd5e.Shield(shield),
		UnarmoredDefense: unarmored,
	}, nil
}

func promptUnarmoredDefense(a prompt.Asker) (dnd5e.UnarmoredDefense, error) {
	kind, err := prompt.Select(a, "Are you a Barbarian or Monk?", []string{"Barbarian", "Monk", "Neither"})
	if err != nil {
		return dnd5e.UnarmoredDefense{}, err
	}

	switch kind {
	case "Barbarian":
		con, err := prompt.InputMap(a, "What is your constitution modifier?", parseModifier)
		if err != nil {
			return dnd5e.UnarmoredDefense{}, err
		}
		return dnd5e.BarbarianDefense(con), nil
	case "Monk":
		wis, err := prompt.InputMap(a, "What is your wisdom modifier?", parseModifier)
		if err != nil {
			return dnd5e.UnarmoredDefense{}, err
		}
		return dnd5e.MonkDefense(wis), nil
	default:
		return dnd5e.NoUnarmoredDefense(), nil
	}
}

func promptHitPoints(a prompt.Asker, defaultMethod dnd5e.HPMethod) (*stats.CalculateHitPointsInput, error) {
	class, err := promptClass(a)
	if err != nil {
		return nil, err
	}

	level, err := prompt.InputMap(a, "Level: ", parseLevel)
	if err != nil {
		return nil, err
	}

	con, err := prompt.InputMap(a, "Constitution modifier: ", parseModifier)
	if err != nil {
		return nil, err
	}

	tough, err := a.Confirm("Do you have the Tough feat?")
	if err != nil {
		return nil, err
	}

	hillDwarf, err := a.Confirm("Are you a Hill Dwarf?")
	if err != nil {
		return nil, err
	}

	method := defaultMethod
	if level > 1 {
		methods := []dnd5e.HPMethod{dnd5e.HPMethodAverage, dnd5e.HPMethodRolled}
		if defaultMethod == dnd5e.HPMethodRolled {
			methods = []dnd5e.HPMethod{dnd5e.HPMethodRolled, dnd5e.HPMethodAverage}
		}
		method, err = prompt.Select(a, "How should hit points past level 1 be determined?", methods)
		if err != nil {
			return nil, err
		}
	}

	return &stats.CalculateHitPointsInput{
		Class:       class,
		Level:       level,
		ConModifier: con,
		Tough:       tough,
		HillDwarf:   hillDwarf,
		Method:      method,
	}, nil
}

func promptClass(a prompt.Asker) (dnd5e.Class, error) {
	id, err := prompt.Select(a, "Select a class", dnd5e.AllClasses())
	if err != nil {
		return dnd5e.Class{}, err
	}
	if id != dnd5e.ClassHomebrew {
		return dnd5e.NewClass(id)
	}

	options := make([]string, 0, len(dnd5e.StandardHitDice())+1)
	for _, d := range dnd5e.StandardHitDice() {
		options = append(options, d.String())
	}
	options = append(options, otherDice)

	choice, err := prompt.Select(a, "Select the hit dice for your homebrew class", options)
	if err != nil {
		return dnd5e.Class{}, err
	}

	var dice dnd5e.HitDice
	if choice == otherDice {
		dice, err = prompt.InputMap(a, "Enter the number of sides on your custom dice", dnd5e.ParseHitDice)
	} else {
		dice, err = dnd5e.ParseHitDice(choice)
	}
	if err != nil {
		return dnd5e.Class{}, err
	}

	name, err := prompt.Input(a, "Enter the name of your homebrew class")
	if err != nil {
		return dnd5e.Class{}, err
	}

	return dnd5e.HomebrewClass(name, dice)
}

func parseModifier(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.InvalidArgumentf("%q is not a whole number", text)
	}
	return n, nil
}

func parseLevel(text string) (int, error) {
	n, err := parseModifier(text)
	if err != nil {
		return 0, err
	}
	if n < dnd5e.MinLevel || n > dnd5e.MaxLevel {
		return 0, errors.InvalidArgumentf("level must be between %d and %d", dnd5e.MinLevel, dnd5e.MaxLevel)
	}
	return n, nil
}
