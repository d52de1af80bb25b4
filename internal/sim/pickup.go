package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// Orb is a dropped XP pickup. Magnet is latched: once attracted (by
// range or by a screen pull) an orb chases the player until consumed.
type Orb struct {
	Pos    core.Vec2
	Tier   int
	Value  float64
	Magnet bool
}

// spawnOrb drops an XP orb where an enemy died. The tier scales with the
// current wave, with a small upward roll; bosses always drop the top tier.
func (s *Sim) spawnOrb(pos core.Vec2, kind EnemyKind) {
	tiers := s.cfg.Pickups.TierValues
	if len(tiers) == 0 {
		return
	}

	tier := s.waves.wave / 4
	if s.rng.Float64() < 0.2 {
		tier++
	}
	if kind == EnemyBoss {
		tier = len(tiers) - 1
	}
	tier = core.Clamp(tier, 0, len(tiers)-1)

	s.orbs = append(s.orbs, Orb{Pos: pos, Tier: tier, Value: tiers[tier]})
}

// tickPickups magnetizes orbs inside the player's pickup range, moves
// latched orbs toward the player, and consumes the ones that arrive.
func (s *Sim) tickPickups(dt float64) {
	pk := &s.cfg.Pickups
	p := &s.player

	keep := s.orbs[:0]
	for i := range s.orbs {
		o := s.orbs[i]

		if !o.Magnet && core.Dist(o.Pos, p.Pos) <= p.PickupRange {
			o.Magnet = true
		}
		if o.Magnet {
			o.Pos = o.Pos.Add(p.Pos.Sub(o.Pos).Normalize().Scale(pk.MagnetSpeed * dt))
		}

		if core.CirclesOverlap(o.Pos, pk.OrbRadius, p.Pos, p.Radius) {
			s.gainXP(o.Value)
			continue
		}
		keep = append(keep, o)
	}
	s.orbs = keep
}

// gainXP credits experience and starts the pre-level-up wind-down when a
// threshold is crossed. Multiple crossings in one tick queue one offer;
// leftover XP carries into the next level.
func (s *Sim) gainXP(amount float64) {
	p := &s.player
	p.XP += amount

	if p.XP >= p.NextLevelXP && s.state == StatePlaying {
		s.setState(StatePreLevelUp)
		s.preLevelTimer = s.cfg.Engine.PreLevelUpFrames
	}
}

// levelUp consumes one threshold: bumps the level, carries surplus XP,
// and raises the next threshold geometrically.
func (s *Sim) levelUp() {
	p := &s.player
	p.Level++
	p.XP -= p.NextLevelXP
	if p.XP < 0 {
		p.XP = 0
	}
	p.NextLevelXP *= s.cfg.Player.XPGrowth
}
