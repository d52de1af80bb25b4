package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// applyHit resolves one elemental hit against an enemy and returns the
// damage actually dealt to it directly. Interaction precedence is fixed
// and evaluated at the moment of the hit:
//
//	fire:  ignites unless wet (wet suppresses ignition)
//	water: wets + pushes away from impact; extinguishes burning for a
//	       steam damage bonus
//	wind:  knockback only
//	lightning: marks its color timer; opposite colors detonate a storm
//	       burst instead of normal hit damage
//
// Storm bursts are a side effect and bypass hit-list/pierce accounting.
func (s *Sim) applyHit(e *Enemy, elem Element, damage float64, from core.Vec2) float64 {
	el := &s.cfg.Elements

	switch elem {
	case ElemFire:
		if !e.Status.Wet {
			e.Status.Burning = true
			e.Status.BurnTimer = el.BurnDurationFrames
		}

	case ElemWater:
		e.Status.Wet = true
		e.Status.WetTimer = el.WetDurationFrames
		s.knockAway(e, from, el.WaterKnockback)
		if e.Status.Burning {
			e.Status.Burning = false
			e.Status.BurnTimer = 0
			damage *= el.SteamBonus
		}

	case ElemWind:
		s.knockAway(e, from, el.WindKnockback)

	case ElemLightningA:
		if e.Status.LightBTimer > 0 {
			s.stormBurst(e)
			return 0
		}
		e.Status.LightATimer = el.LightningTimerFrames
		e.Status.Electrified = true

	case ElemLightningB:
		if e.Status.LightATimer > 0 {
			s.stormBurst(e)
			return 0
		}
		e.Status.LightBTimer = el.LightningTimerFrames
		e.Status.Electrified = true
	}

	s.damageEnemy(e, damage)
	return damage
}

// knockAway adds impulse to the enemy's knockback velocity, pushing it
// away from the impact point. Coincident positions produce no push.
func (s *Sim) knockAway(e *Enemy, from core.Vec2, force float64) {
	dir := e.Pos.Sub(from).Normalize()
	e.Knock = e.Knock.Add(dir.Scale(force))
}

// damageEnemy applies raw damage and the hit flash. Death is detected by
// the reap pass, never mid-resolution.
func (s *Sim) damageEnemy(e *Enemy, damage float64) {
	if damage <= 0 {
		return
	}
	e.HP -= damage
	e.FlashTimer = s.cfg.Enemies.HitFlashFrames
}

// stormBurst detonates an area discharge at the enemy's position: every
// live enemy in radius takes flat storm damage and the center enemy's
// lightning timers are cleared. Exempt from pierce and hit-lists.
func (s *Sim) stormBurst(center *Enemy) {
	el := &s.cfg.Elements

	center.Status.LightATimer = 0
	center.Status.LightBTimer = 0
	center.Status.Electrified = false

	pos := center.Pos
	s.enemies.ForEach(func(_ Handle, e *Enemy) {
		if e.HP <= 0 {
			return // corpses awaiting the reap pass take nothing
		}
		if core.DistSq(pos, e.Pos) <= el.StormRadius*el.StormRadius {
			s.damageEnemy(e, el.StormDamage)
		}
	})

	s.flashes = append(s.flashes, flash{
		Pos:    pos,
		Radius: el.StormRadius,
		Timer:  stormFlashFrames,
		Life:   stormFlashFrames,
	})
}

// tickStatus decays every enemy's status timers and applies burn
// damage-over-time scaled by elapsed time and the current wave.
func (s *Sim) tickStatus(dt float64) {
	el := &s.cfg.Elements
	frames := dt * s.cfg.Engine.ReferenceTickRate
	burn := el.BurnDPS * (1 + el.BurnWaveScaling*float64(s.waves.wave)) * dt

	s.enemies.ForEach(func(_ Handle, e *Enemy) {
		if e.Status.Burning {
			e.HP -= burn
			e.Status.BurnTimer -= frames
			if e.Status.BurnTimer <= 0 {
				e.Status.Burning = false
				e.Status.BurnTimer = 0
			}
		}
		if e.Status.Wet {
			e.Status.WetTimer -= frames
			if e.Status.WetTimer <= 0 {
				e.Status.Wet = false
				e.Status.WetTimer = 0
			}
		}
		if e.Status.LightATimer > 0 {
			e.Status.LightATimer -= frames
			if e.Status.LightATimer < 0 {
				e.Status.LightATimer = 0
			}
		}
		if e.Status.LightBTimer > 0 {
			e.Status.LightBTimer -= frames
			if e.Status.LightBTimer < 0 {
				e.Status.LightBTimer = 0
			}
		}
		e.Status.Electrified = e.Status.LightATimer > 0 || e.Status.LightBTimer > 0

		if e.FlashTimer > 0 {
			e.FlashTimer -= frames
		}
	})
}
