package sim

import (
	"math"

	"github.com/vovakirdan/cardstorm/internal/core"
)

// fireContext is one artifact activation: the weapon's catalog values,
// the effect multiset snapshot valid at schedule time, and the buff
// multipliers it consumed.
type fireContext struct {
	cardID   CardID
	artifact ArtifactPayload
	effects  []activeEffect
	rangeMul float64
	speedMul float64
	dupIndex int // which repeat of a multicast this is
	dupTotal int
}

// has reports whether any copy of the tag is active in the snapshot.
func (ctx *fireContext) has(tag LogicTag) bool {
	for _, e := range ctx.effects {
		if e.logic == tag {
			return true
		}
	}
	return false
}

// countOf returns how many copies of the tag are active; giant stacks
// by copy, presence tags do not.
func (ctx *fireContext) countOf(tag LogicTag) int {
	n := 0
	for _, e := range ctx.effects {
		if e.logic == tag {
			n++
		}
	}
	return n
}

// fireArtifact dispatches one activation by archetype.
func (s *Sim) fireArtifact(ctx fireContext) {
	switch ctx.artifact.Archetype {
	case ArchScreenPull:
		s.fireScreenPull(ctx)
	case ArchChainLightning:
		s.fireChainLightning(ctx)
	default:
		s.fireDirectional(ctx)
	}
}

// fireScreenPull magnetizes every live pickup toward the player and
// triggers a cosmetic flash. No projectile is spawned and targeting is
// ignored entirely.
func (s *Sim) fireScreenPull(ctx fireContext) {
	for i := range s.orbs {
		s.orbs[i].Magnet = true
	}
	s.flashes = append(s.flashes, flash{
		Pos:    s.player.Pos,
		Radius: s.cfg.Projectiles.BaseRange,
		Timer:  pullFlashFrames,
		Life:   pullFlashFrames,
		Color:  ctx.artifact.Color,
	})
}

// fireChainLightning hops from the player to the nearest untargeted
// enemy, then from struck enemy to struck enemy, dealing direct damage
// outside the generic collision resolver. Fan/ring/back-shot effects
// lengthen the chain instead of multiplying angles.
func (s *Sim) fireChainLightning(ctx fireContext) {
	fx := &s.cfg.Effects

	hops := fx.ChainBaseHops
	if ctx.has(LogicFan) {
		hops += fx.ChainFanBonus
	}
	if ctx.has(LogicRing) {
		hops += fx.ChainRingBonus
	}
	if ctx.has(LogicBackShot) {
		hops += fx.ChainBackBonus
	}

	reach := s.cfg.Projectiles.BaseRange * ctx.rangeMul
	damage := ctx.artifact.BaseDamage * s.player.DamageMul * (1 + fx.GiantStep*float64(ctx.countOf(LogicGiant)))

	source := s.player.Pos
	visited := make(map[Handle]struct{}, hops)

	for hop := 0; hop < hops; hop++ {
		h, e := s.nearestEnemy(source, reach, visited)
		if e == nil {
			break
		}
		s.applyHit(e, ctx.artifact.Element, damage, source)
		s.bolts = append(s.bolts, bolt{
			From:  source,
			To:    e.Pos,
			Timer: boltFlashFrames,
			Color: ctx.artifact.Color,
		})
		visited[h] = struct{}{}
		source = e.Pos
	}
}

// fireDirectional computes the activation's angle set from active
// effects and spawns one projectile per angle.
func (s *Sim) fireDirectional(ctx fireContext) {
	fx := &s.cfg.Effects
	base := s.baseAimAngle()

	angles := s.angleScratch[:0]
	switch {
	case ctx.has(LogicRing):
		// Ring overrides fan's count: a full circle regardless.
		step := 2 * math.Pi / float64(fx.RingCount)
		for i := 0; i < fx.RingCount; i++ {
			angles = append(angles, base+float64(i)*step)
		}
	case ctx.has(LogicFan):
		spread := fx.FanSpreadDeg * math.Pi / 180
		n := fx.FanCount
		for i := 0; i < n; i++ {
			frac := 0.0
			if n > 1 {
				frac = float64(i)/float64(n-1) - 0.5
			}
			angles = append(angles, base+frac*spread)
		}
	default:
		angles = append(angles, base)
	}

	if ctx.has(LogicBackShot) {
		// Applied after fan/ring so counts multiply.
		for _, a := range angles[:len(angles):len(angles)] {
			angles = append(angles, a+math.Pi)
		}
	}
	s.angleScratch = angles

	for _, a := range angles {
		s.spawnProjectile(ctx, a)
	}
}

// baseAimAngle picks the activation's reference bearing: nearest enemy
// under auto-aim, the free-aim point under manual aim. With nothing to
// aim at the previous manual bearing is used.
func (s *Sim) baseAimAngle() float64 {
	if s.player.AimMode == AimAuto {
		if _, e := s.nearestEnemy(s.player.Pos, 0, nil); e != nil {
			return e.Pos.Sub(s.player.Pos).Angle()
		}
	}
	return s.player.AimPoint.Sub(s.player.Pos).Angle()
}

// spawnProjectile builds the archetype-specific projectile for one angle
// of one activation, folding in buffs and active-effect flags.
func (s *Sim) spawnProjectile(ctx fireContext, angle float64) {
	pr := &s.cfg.Projectiles
	fx := &s.cfg.Effects

	giant := ctx.countOf(LogicGiant)
	giantMul := 1 + fx.GiantStep*float64(giant)
	dir := core.FromAngle(angle)

	p := &Projectile{
		Archetype:   ctx.artifact.Archetype,
		Element:     ctx.artifact.Element,
		Color:       ctx.artifact.Color,
		Damage:      ctx.artifact.BaseDamage * s.player.DamageMul * giantMul,
		OwnerCard:   ctx.cardID,
		DupIndex:    ctx.dupIndex,
		GiantStacks: giant,
		Homing:      ctx.has(LogicHoming),
		Wobble:      ctx.has(LogicWobble),
		Scale:       1,
		Opacity:     1,
	}

	switch ctx.artifact.Archetype {
	case ArchStraight:
		p.Pos = s.player.Pos
		p.Anchor = p.Pos
		p.Vel = dir.Scale(pr.BaseSpeed * ctx.speedMul)
		p.Radius = pr.BaseRadius * giantMul
		p.Life = pr.StraightLifetimeFrames * ctx.rangeMul
		p.Pierce = pr.BasePierce

	case ArchAreaBurst:
		p.Pos = s.player.Pos.Add(dir.Scale(2))
		p.Anchor = p.Pos
		p.Radius = pr.BaseRadius * 3 * ctx.rangeMul * giantMul
		p.Life = pr.AreaBurstLifetimeFrames * ctx.rangeMul
		p.Pierce = pr.AreaPierce

	case ArchGroundStream:
		p.Pos = s.player.Pos.Add(dir.Scale(1))
		p.Anchor = p.Pos
		p.Vel = dir.Scale(pr.BaseSpeed * 0.4 * ctx.speedMul)
		p.Radius = pr.BaseRadius * 2 * ctx.rangeMul * giantMul
		p.Life = pr.StreamLifetimeFrames * ctx.rangeMul
		p.Pierce = pr.AreaPierce

	case ArchOrbiter:
		p.orbitRadius = pr.OrbitRadius * ctx.rangeMul
		// Duplicate index spaces multicast copies evenly around the orbit.
		p.orbitAngle = angle + 2*math.Pi*float64(ctx.dupIndex)/float64(core.Max(ctx.dupTotal, 1))
		p.Pos = s.player.Pos.Add(core.FromAngle(p.orbitAngle).Scale(p.orbitRadius))
		p.Radius = pr.BaseRadius * 1.5 * giantMul
		p.Pierce = pr.AreaPierce
		p.hitReset = pr.HitResetFrames

	case ArchSeekMinion:
		p.Pos = s.player.Pos.Add(core.FromAngle(angle + float64(ctx.dupIndex)).Scale(pr.MinionHoverRadius))
		p.Radius = pr.BaseRadius * 1.5 * giantMul
		p.baseRadius = p.Radius
		p.Pierce = pr.AreaPierce
		p.phase = minionIdle
		p.target = NoHandle

	default:
		// Chain lightning and screen pull never reach here.
		return
	}

	if p.MaxLife = p.Life; p.MaxLife <= 0 {
		p.MaxLife = 1
	}

	s.projectiles = append(s.projectiles, p)
}
