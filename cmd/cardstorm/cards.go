package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cardstorm/internal/content"
	"github.com/vovakirdan/cardstorm/internal/sim"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the card catalog",
	Long: `Print every card the level-up flow can offer, grouped by kind.

Examples:
  cardstorm cards`,
	Run: runCards,
}

func runCards(cmd *cobra.Command, args []string) {
	catalog := content.NewCatalog()

	kinds := []sim.CardKind{sim.KindArtifact, sim.KindEffect, sim.KindBuff, sim.KindStat}
	headers := map[sim.CardKind]string{
		sim.KindArtifact: "Weapons",
		sim.KindEffect:   "Logic modifiers",
		sim.KindBuff:     "Buffs",
		sim.KindStat:     "Permanent stats",
	}

	for _, kind := range kinds {
		fmt.Printf("%s\n", headers[kind])
		for _, card := range catalog.All() {
			if card.Kind != kind {
				continue
			}
			fmt.Printf("  %-16s %-10s %s\n", card.Name, card.Rarity, describeCard(card))
		}
		fmt.Println()
	}
}

func describeCard(c sim.Card) string {
	switch {
	case c.Artifact != nil:
		a := c.Artifact
		if a.CooldownFrames <= 0 {
			return fmt.Sprintf("%s, %s, %.0f dmg, persistent", a.Archetype, a.Element, a.BaseDamage)
		}
		return fmt.Sprintf("%s, %s, %.0f dmg, %.1fs cooldown", a.Archetype, a.Element, a.BaseDamage, a.CooldownFrames/60)
	case c.Effect != nil:
		return fmt.Sprintf("%s, influences next %d cards", c.Effect.Logic, c.Effect.Influence)
	case c.Buff != nil:
		b := c.Buff
		return fmt.Sprintf("next weapon: +%.0f%% range, +%.0f%% speed, +%.0f%% rate", b.RangePct, b.SpeedPct, b.FrequencyPct)
	case c.Stat != nil:
		s := c.Stat
		return fmt.Sprintf("permanent: +%.0f%% HP, +%.0f%% damage, +%.0f%% pickup", s.MaxHPPct, s.DamagePct, s.PickupRadiusPct)
	}
	return ""
}
