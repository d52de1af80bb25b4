package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// AimMode selects how artifacts pick their base aim angle.
type AimMode int

const (
	AimAuto   AimMode = iota // bearing to the nearest live enemy
	AimManual                // bearing to the free-aim point
)

// String returns the display name of the aim mode.
func (m AimMode) String() string {
	if m == AimManual {
		return "Manual"
	}
	return "Auto"
}

// Player is the player aggregate: position, health, progression, and the
// ordered card inventory. Mutated only by the tick loop and the command
// surface between ticks.
type Player struct {
	Pos    core.Vec2
	Knock  core.Vec2 // decaying knockback, separate from steering
	Radius float64

	HP    float64
	MaxHP float64

	InvulnTimer float64 // frames; contact damage only lands at <= 0
	FlashTimer  float64

	Speed       float64
	DamageMul   float64
	PickupRange float64

	Level       int
	XP          float64
	NextLevelXP float64

	// Inventory is the ordered card sequence; order is the combo language.
	Inventory []Card

	MoveIntent core.Vec2 // unit steering vector, zero when halted
	AimMode    AimMode
	AimPoint   core.Vec2 // world-space free-aim target
}

// applyStatCard folds a Stat payload into the aggregate, once, at grant.
func (p *Player) applyStatCard(stat *StatPayload) {
	if stat == nil {
		return
	}
	if stat.MaxHPPct != 0 {
		oldMax := p.MaxHP
		p.MaxHP *= 1 + stat.MaxHPPct/100
		// Growing max HP heals the difference; shrinking clamps.
		p.HP += p.MaxHP - oldMax
		if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
	}
	p.DamageMul *= 1 + stat.DamagePct/100
	p.PickupRange *= 1 + stat.PickupRadiusPct/100
}
