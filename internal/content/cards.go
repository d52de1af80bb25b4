// Package content defines the card catalog: every artifact, effect,
// buff, and stat card the level-up flow can offer. The catalog is data;
// all behavior lives in the sim package.
package content

import (
	"math/rand"

	"github.com/vovakirdan/cardstorm/internal/core"
	"github.com/vovakirdan/cardstorm/internal/sim"
)

// rarityWeight is the relative draw weight per rarity tier.
var rarityWeight = map[sim.Rarity]float64{
	sim.RarityCommon:    100,
	sim.RarityRare:      40,
	sim.RarityEpic:      15,
	sim.RarityLegendary: 5,
}

// Catalog is the full card pool. It implements sim.CardSource.
type Catalog struct {
	pool []sim.Card
}

// NewCatalog builds the standard pool.
func NewCatalog() *Catalog {
	return &Catalog{pool: standardPool()}
}

// All returns a copy of the whole pool.
func (c *Catalog) All() []sim.Card {
	out := make([]sim.Card, len(c.pool))
	copy(out, c.pool)
	return out
}

// ByName looks a card up by its display name.
func (c *Catalog) ByName(name string) (sim.Card, bool) {
	for _, card := range c.pool {
		if card.Name == name {
			return card, true
		}
	}
	return sim.Card{}, false
}

// Offer draws up to n distinct cards, weighted by rarity. Weapon
// archetypes already in the inventory are excluded so a run never holds
// two copies of the same weapon; everything else can repeat across
// level-ups.
func (c *Catalog) Offer(rng *rand.Rand, inventory []sim.Card, n int) []sim.Card {
	owned := make(map[sim.Archetype]bool)
	for _, card := range inventory {
		if card.Kind == sim.KindArtifact && card.Artifact != nil {
			owned[card.Artifact.Archetype] = true
		}
	}

	candidates := make([]sim.Card, 0, len(c.pool))
	for _, card := range c.pool {
		if card.Kind == sim.KindArtifact && owned[card.Artifact.Archetype] {
			continue
		}
		candidates = append(candidates, card)
	}

	var offer []sim.Card
	for len(offer) < n && len(candidates) > 0 {
		i := weightedPick(rng, candidates)
		offer = append(offer, candidates[i])
		candidates = append(candidates[:i], candidates[i+1:]...)
	}
	return offer
}

// weightedPick rolls one index from the candidate list by rarity weight.
func weightedPick(rng *rand.Rand, cards []sim.Card) int {
	total := 0.0
	for _, card := range cards {
		total += rarityWeight[card.Rarity]
	}
	r := rng.Float64() * total
	for i, card := range cards {
		r -= rarityWeight[card.Rarity]
		if r < 0 {
			return i
		}
	}
	return len(cards) - 1
}

func artifact(name string, rarity sim.Rarity, arch sim.Archetype, elem sim.Element, cooldown, damage float64, color core.Color) sim.Card {
	return sim.Card{
		Kind:   sim.KindArtifact,
		Name:   name,
		Rarity: rarity,
		Artifact: &sim.ArtifactPayload{
			CooldownFrames: cooldown,
			BaseDamage:     damage,
			Element:        elem,
			Archetype:      arch,
			Color:          color,
		},
	}
}

func effect(name string, rarity sim.Rarity, logic sim.LogicTag, influence int) sim.Card {
	return sim.Card{
		Kind:   sim.KindEffect,
		Name:   name,
		Rarity: rarity,
		Effect: &sim.EffectPayload{Logic: logic, Influence: influence},
	}
}

func buff(name string, rarity sim.Rarity, rangePct, speedPct, freqPct float64) sim.Card {
	return sim.Card{
		Kind:   sim.KindBuff,
		Name:   name,
		Rarity: rarity,
		Buff:   &sim.BuffPayload{RangePct: rangePct, SpeedPct: speedPct, FrequencyPct: freqPct},
	}
}

func stat(name string, rarity sim.Rarity, maxHPPct, damagePct, pickupPct float64) sim.Card {
	return sim.Card{
		Kind:   sim.KindStat,
		Name:   name,
		Rarity: rarity,
		Stat:   &sim.StatPayload{MaxHPPct: maxHPPct, DamagePct: damagePct, PickupRadiusPct: pickupPct},
	}
}

func standardPool() []sim.Card {
	return []sim.Card{
		// Weapons
		artifact("Ember Bolt", sim.RarityCommon, sim.ArchStraight, sim.ElemFire, 45, 8, core.ColorRed),
		artifact("Tidal Lance", sim.RarityCommon, sim.ArchStraight, sim.ElemWater, 60, 10, core.ColorBlue),
		artifact("Gale Burst", sim.RarityRare, sim.ArchAreaBurst, sim.ElemWind, 90, 6, core.ColorCyan),
		artifact("Magma Vent", sim.RarityRare, sim.ArchGroundStream, sim.ElemFire, 120, 4, core.ColorOrange),
		artifact("Arc Coil", sim.RarityRare, sim.ArchChainLightning, sim.ElemLightningA, 80, 12, core.ColorYellow),
		artifact("Void Coil", sim.RarityRare, sim.ArchChainLightning, sim.ElemLightningB, 80, 12, core.ColorMagenta),
		artifact("Whirling Blade", sim.RarityEpic, sim.ArchOrbiter, sim.ElemPhysical, 0, 9, core.ColorWhite),
		artifact("Shade Familiar", sim.RarityEpic, sim.ArchSeekMinion, sim.ElemPhysical, 0, 14, core.ColorGray),
		artifact("Lodestone", sim.RarityLegendary, sim.ArchScreenPull, sim.ElemPhysical, 300, 0, core.ColorBrightWhite),

		// Logic modifiers
		effect("Echo", sim.RarityEpic, sim.LogicDoubleCast, 2),
		effect("Splinter", sim.RarityRare, sim.LogicFan, 2),
		effect("Halo", sim.RarityEpic, sim.LogicRing, 2),
		effect("Rearguard", sim.RarityCommon, sim.LogicBackShot, 2),
		effect("Seeker", sim.RarityRare, sim.LogicHoming, 3),
		effect("Serpentine", sim.RarityCommon, sim.LogicWobble, 3),
		effect("Colossus", sim.RarityRare, sim.LogicGiant, 2),

		// Buffs
		buff("Long Barrel", sim.RarityCommon, 40, 0, 0),
		buff("Accelerant", sim.RarityCommon, 0, 50, 0),
		buff("Quickload", sim.RarityCommon, 0, 0, 35),
		buff("Overcharge", sim.RarityEpic, 20, 20, 20),

		// Permanent stats
		stat("Tough Hide", sim.RarityCommon, 20, 0, 0),
		stat("Whetstone", sim.RarityCommon, 0, 15, 0),
		stat("Magnet Core", sim.RarityRare, 0, 0, 30),
	}
}
