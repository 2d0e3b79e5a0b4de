package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/stats"
	dicesession "github.com/KirkDiggler/rpg-stats/internal/repositories/dice_session"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	tipStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#E5C07B"))
)

func line(b *strings.Builder, label string, value any) {
	fmt.Fprintf(b, "  %s %v\n", labelStyle.Render(label+":"), value)
}

func signed(n int) string {
	return fmt.Sprintf("%+d", n)
}

func renderArmorClass(output *stats.CalculateArmorClassOutput) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Your AC is %d", output.ArmorClass)))
	b.WriteString("\n")

	bd := output.Breakdown
	line(&b, "Base", bd.Base)
	line(&b, "Dexterity", signed(bd.Dex-bd.UnarmoredBonus))
	if bd.UnarmoredBonus != 0 {
		line(&b, "Unarmored Defense", signed(bd.UnarmoredBonus))
	}
	if bd.Shield != 0 {
		line(&b, "Shield", signed(bd.Shield))
	}

	for _, tip := range output.Tips {
		b.WriteString(tipStyle.Render(tip))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHitPoints(input *stats.CalculateHitPointsInput, output *stats.CalculateHitPointsOutput) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Your max HP is %s", formatHP(output.HitPoints))))
	b.WriteString("\n")

	line(&b, "Class", fmt.Sprintf("%s (%s)", input.Class, input.Class.HitDice()))
	line(&b, "Level", input.Level)
	line(&b, "Constitution", signed(input.ConModifier))
	line(&b, "Method", output.Result.Method())
	if input.Tough {
		line(&b, "Tough", "yes")
	}
	if input.HillDwarf {
		line(&b, "Hill Dwarf", "yes")
	}
	if len(output.Rolls) > 0 {
		line(&b, "Rolls", joinInts(output.Rolls))
	}
	if output.Roll != nil {
		line(&b, "Recorded", output.Roll.RollID)
	}
	return b.String()
}

func renderRollLog(session *dicesession.DiceSession) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Rolls for %s", session.EntityID)))
	b.WriteString("\n")

	line(&b, "Context", session.Context)
	line(&b, "Created", session.CreatedAt.Format(time.RFC3339))
	line(&b, "Expires", session.ExpiresAt.Format(time.RFC3339))
	line(&b, "Total Rolls", len(session.Rolls))

	for i, roll := range session.Rolls {
		fmt.Fprintf(&b, "\n  %s\n", headerStyle.Render(fmt.Sprintf("Roll %d: %s", i+1, roll.RollID)))
		line(&b, "Notation", roll.Notation)
		line(&b, "Dice", joinInts(roll.Dice))
		line(&b, "Modifier", signed(roll.Modifier))
		line(&b, "Total", roll.Total)
		if roll.Description != "" {
			line(&b, "Description", roll.Description)
		}
		line(&b, "Rolled", roll.RolledAt.Format(time.RFC3339))
	}
	return b.String()
}

// formatHP drops the fraction when the total is whole
func formatHP(hp float64) string {
	if hp == float64(int64(hp)) {
		return fmt.Sprintf("%d", int64(hp))
	}
	return fmt.Sprintf("%.1f", hp)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

type armorClassView struct {
	ArmorClass int                `json:"armor_class"`
	Breakdown  engine.ACBreakdown `json:"breakdown"`
	Tips       []string           `json:"tips,omitempty"`
}

type hitPointsView struct {
	Class     string                `json:"class"`
	HitDice   string                `json:"hit_dice"`
	Level     int                   `json:"level"`
	Method    string                `json:"method"`
	HitPoints float64               `json:"hit_points"`
	Rolls     []int                 `json:"rolls,omitempty"`
	Roll      *dicesession.DiceRoll `json:"roll,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func armorClassJSON(output *stats.CalculateArmorClassOutput) armorClassView {
	return armorClassView{
		ArmorClass: output.ArmorClass,
		Breakdown:  output.Breakdown,
		Tips:       output.Tips,
	}
}

func hitPointsJSON(input *stats.CalculateHitPointsInput, output *stats.CalculateHitPointsOutput) hitPointsView {
	return hitPointsView{
		Class:     input.Class.String(),
		HitDice:   input.Class.HitDice().String(),
		Level:     input.Level,
		Method:    string(output.Result.Method()),
		HitPoints: output.HitPoints,
		Rolls:     output.Rolls,
		Roll:      output.Roll,
	}
}
