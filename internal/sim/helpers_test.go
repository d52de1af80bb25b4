package sim

import (
	"math/rand"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
)

// nopSource never offers cards; level-ups resolve silently.
type nopSource struct{}

func (nopSource) Offer(*rand.Rand, []Card, int) []Card { return nil }

// listSource offers a fixed slice, truncated to n.
type listSource struct {
	cards []Card
}

func (l listSource) Offer(_ *rand.Rand, _ []Card, n int) []Card {
	if n > len(l.cards) {
		n = len(l.cards)
	}
	out := make([]Card, n)
	copy(out, l.cards[:n])
	return out
}

func newTestSim(seed int64) *Sim {
	cfg := config.DefaultSimConfig()
	return New(&cfg, seed, nopSource{})
}

const testDT = 1.0 / 60

func artifactCard(name string, arch Archetype, elem Element, cooldown, damage float64) Card {
	return Card{
		Kind: KindArtifact,
		Name: name,
		Artifact: &ArtifactPayload{
			CooldownFrames: cooldown,
			BaseDamage:     damage,
			Element:        elem,
			Archetype:      arch,
		},
	}
}

func effectCard(logic LogicTag, influence int) Card {
	return Card{
		Kind:   KindEffect,
		Name:   logic.String(),
		Effect: &EffectPayload{Logic: logic, Influence: influence},
	}
}

func buffCard(rangePct, speedPct, freqPct float64) Card {
	return Card{
		Kind: KindBuff,
		Name: "Buff",
		Buff: &BuffPayload{RangePct: rangePct, SpeedPct: speedPct, FrequencyPct: freqPct},
	}
}

func statCard(maxHPPct, damagePct, pickupPct float64) Card {
	return Card{
		Kind: KindStat,
		Name: "Stat",
		Stat: &StatPayload{MaxHPPct: maxHPPct, DamagePct: damagePct, PickupRadiusPct: pickupPct},
	}
}

// addEnemyAt drops a plain crawler directly into the arena, bypassing the
// wave director.
func (s *Sim) addEnemyAt(pos core.Vec2, hp float64) Handle {
	return s.enemies.Add(Enemy{
		Pos:    pos,
		Radius: s.cfg.Enemies.BaseRadius,
		HP:     hp,
		MaxHP:  hp,
		Kind:   EnemyCrawler,
		Speed:  s.cfg.Enemies.BaseSpeed,
	})
}

// liveProjectiles counts the projectiles still in flight.
func (s *Sim) liveProjectiles() int {
	n := 0
	for _, p := range s.projectiles {
		if !p.dead {
			n++
		}
	}
	return n
}
