package sim

import (
	"math"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
)

// minionPhase is the seek-minion state label.
type minionPhase int

const (
	minionIdle minionPhase = iota
	minionAttack
	minionSlash
)

// String returns the display name of the minion phase.
func (p minionPhase) String() string {
	switch p {
	case minionIdle:
		return "Idle"
	case minionAttack:
		return "Attack"
	case minionSlash:
		return "Slash"
	default:
		return "Unknown"
	}
}

// Projectile is a live projectile or persistent weapon. The Archetype tag
// selects which state machine runs it; archetype-specific fields are only
// meaningful under their own tag.
type Projectile struct {
	Archetype Archetype
	Element   Element
	Color     core.Color

	Pos    core.Vec2
	Vel    core.Vec2
	Anchor core.Vec2 // spawn anchor for stationary archetypes
	Radius float64

	Damage  float64
	Life    float64 // frames remaining; persistent archetypes ignore it
	MaxLife float64
	Pierce  int

	OwnerCard CardID
	DupIndex  int

	GiantStacks int
	Homing      bool
	Wobble      bool
	wobblePhase float64

	Scale   float64 // growth for fire/wind archetypes, 1.0 otherwise
	Opacity float64

	// Orbiter state
	orbitAngle  float64
	orbitRadius float64

	// Seek-minion state
	phase      minionPhase
	target     Handle
	stateTimer float64
	idlePhase  float64
	reacquire  float64
	baseRadius float64 // restored when the slash radius ends

	hitList  map[Handle]struct{}
	hitReset float64

	dead bool
}

// HitRadius is the collision radius including growth scaling.
func (p *Projectile) HitRadius() float64 {
	return p.Radius * p.Scale
}

// canHit reports whether the projectile participates in collision this
// tick. Minions only damage while slashing; chain lightning and screen
// pull never own a projectile at all.
func (p *Projectile) canHit() bool {
	if p.dead {
		return false
	}
	if p.Archetype == ArchSeekMinion {
		return p.phase == minionSlash
	}
	return true
}

// alreadyHit reports whether the enemy identity is in the hit-list.
func (p *Projectile) alreadyHit(h Handle) bool {
	_, ok := p.hitList[h]
	return ok
}

// markHit records the enemy identity so it cannot be damaged again during
// this flight (or reset window), then consumes one pierce. Persistent
// weapons never pierce out; they despawn only when their card stops
// requesting them.
func (p *Projectile) markHit(h Handle) {
	if p.hitList == nil {
		p.hitList = make(map[Handle]struct{}, 4)
	}
	p.hitList[h] = struct{}{}
	if p.Archetype.persistent() {
		return
	}
	p.Pierce--
	if p.Pierce <= 0 {
		p.dead = true
	}
}

// clearHits empties the hit-list, allowing repeat damage on the next
// revolution or slash tick.
func (p *Projectile) clearHits() {
	for k := range p.hitList {
		delete(p.hitList, k)
	}
}

// grows reports whether the archetype/element combination scales up and
// fades out over its lifetime.
func (p *Projectile) grows() bool {
	if p.Element != ElemFire && p.Element != ElemWind {
		return false
	}
	return p.Archetype == ArchAreaBurst || p.Archetype == ArchGroundStream || p.Archetype == ArchStraight
}

// tickProjectiles advances every live projectile's motion and state
// machine, then compacts the dead ones out of the slice.
func (s *Sim) tickProjectiles(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate

	for _, p := range s.projectiles {
		if p.dead {
			continue
		}
		switch p.Archetype {
		case ArchOrbiter:
			s.tickOrbiter(p, dt, frames)
		case ArchSeekMinion:
			s.tickMinion(p, dt, frames)
		default:
			s.tickFlier(p, dt, frames)
		}
	}

	// Compact in place, preserving order.
	alive := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.dead {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(s.projectiles); i++ {
		s.projectiles[i] = nil
	}
	s.projectiles = alive
}

// tickFlier runs straight, area-burst, and ground-stream motion: linear
// or near-zero velocity, lifetime countdown, optional homing steering,
// wobble offsets, and fire/wind growth.
func (s *Sim) tickFlier(p *Projectile, dt, frames float64) {
	pr := &s.cfg.Projectiles
	fx := &s.cfg.Effects

	if p.Homing && !p.Vel.IsZero() {
		if _, e := s.nearestEnemy(p.Pos, 0, nil); e != nil {
			want := e.Pos.Sub(p.Pos).Angle()
			have := p.Vel.Angle()
			diff := normalizeAngle(want - have)
			maxTurn := fx.HomingTurnRate * dt
			turn := core.ClampF(diff, -maxTurn, maxTurn)
			p.Vel = core.FromAngle(have + turn).Scale(p.Vel.Len())
		}
	}

	move := p.Vel.Scale(dt)

	if p.Wobble {
		oldOffset := math.Sin(p.wobblePhase) * fx.WobbleAmplitude
		p.wobblePhase += fx.WobbleFrequency * dt
		newOffset := math.Sin(p.wobblePhase) * fx.WobbleAmplitude

		if p.Vel.IsZero() {
			// Stationary archetypes sway around their anchor instead.
			p.Pos = p.Anchor.Add(core.V(newOffset, 0))
		} else {
			lateral := p.Vel.Normalize().Perp()
			move = move.Add(lateral.Scale(newOffset - oldOffset))
		}
	}

	p.Pos = p.Pos.Add(move)

	p.Life -= frames
	if p.Life <= 0 {
		p.dead = true
		return
	}

	if p.grows() {
		// Scale up and fade out across the lifetime; a fully faded
		// projectile self-destructs even with lifetime remaining.
		progress := 1 - p.Life/p.MaxLife
		p.Scale = 1 + (pr.GrowthScaleMax-1)*progress
		p.Opacity = 1 - progress
		if p.Opacity <= 0 {
			p.dead = true
		}
	}
}

// tickOrbiter recomputes the blade's world position from the player's
// current position at the advanced orbit angle, and clears its hit-list
// on a fixed cadence so repeat revolutions damage again.
func (s *Sim) tickOrbiter(p *Projectile, dt, frames float64) {
	pr := &s.cfg.Projectiles

	p.orbitAngle += pr.OrbitSpeed * dt
	p.Pos = s.player.Pos.Add(core.FromAngle(p.orbitAngle).Scale(p.orbitRadius))

	p.hitReset -= frames
	if p.hitReset <= 0 {
		p.clearHits()
		p.hitReset = pr.HitResetFrames
	}
}

// tickMinion runs the three-state seek-and-slash machine. Any stale
// target reference drops the minion back to Idle instead of being
// dereferenced.
func (s *Sim) tickMinion(p *Projectile, dt, frames float64) {
	pr := &s.cfg.Projectiles

	switch p.phase {
	case minionIdle:
		// Hover on a slow orbit around the player.
		p.idlePhase += dt * 2
		hover := s.player.Pos.Add(core.FromAngle(p.idlePhase).Scale(pr.MinionHoverRadius))
		p.Pos = p.Pos.Add(hover.Sub(p.Pos).Scale(core.ClampF(dt*4, 0, 1)))

		if p.reacquire > 0 {
			p.reacquire -= frames
			return
		}
		if h, e := s.nearestEnemy(p.Pos, pr.MinionSearchRadius, nil); e != nil {
			p.target = h
			p.phase = minionAttack
		}

	case minionAttack:
		e := s.enemies.Get(p.target)
		if e == nil {
			p.resetToIdle(pr)
			return
		}
		to := e.Pos.Sub(p.Pos)
		if to.Len() > pr.MinionSearchRadius*1.5 {
			p.resetToIdle(pr)
			return
		}
		p.Pos = p.Pos.Add(to.Normalize().Scale(pr.MinionDashSpeed * dt))
		if core.Dist(p.Pos, e.Pos) <= pr.MinionMeleeRange+e.Radius {
			p.phase = minionSlash
			p.stateTimer = pr.MinionSlashFrames
			p.hitReset = pr.HitResetFrames
			p.Radius = pr.MinionSlashRadius
			p.clearHits()
		}

	case minionSlash:
		// Spin in place; the collision resolver applies the area damage
		// while the cadence below re-arms the hit-list.
		p.hitReset -= frames
		if p.hitReset <= 0 {
			p.clearHits()
			p.hitReset = pr.HitResetFrames
		}
		p.stateTimer -= frames
		if p.stateTimer <= 0 {
			p.resetToIdle(pr)
		}
	}
}

// resetToIdle is the fail-safe default state transition.
func (p *Projectile) resetToIdle(pr *config.ProjectilesConfig) {
	p.phase = minionIdle
	p.target = NoHandle
	p.reacquire = pr.MinionReacquireFrames
	if p.baseRadius > 0 {
		p.Radius = p.baseRadius
	}
	p.clearHits()
}

// nearestEnemy finds the closest live enemy to pos, optionally bounded by
// maxRange (0 means unbounded) and excluding the given handles.
func (s *Sim) nearestEnemy(pos core.Vec2, maxRange float64, exclude map[Handle]struct{}) (Handle, *Enemy) {
	best := NoHandle
	var bestEnemy *Enemy
	bestDist := math.MaxFloat64
	if maxRange > 0 {
		bestDist = maxRange * maxRange
	}

	s.enemies.ForEach(func(h Handle, e *Enemy) {
		if exclude != nil {
			if _, skip := exclude[h]; skip {
				return
			}
		}
		d := core.DistSq(pos, e.Pos)
		if d <= bestDist {
			bestDist = d
			best = h
			bestEnemy = e
		}
	})

	return best, bestEnemy
}

// normalizeAngle wraps an angle difference into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
