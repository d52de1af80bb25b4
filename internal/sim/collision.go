package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// resolveCollisions runs the circle tests for this tick: every eligible
// projectile against every live enemy, then every enemy against the
// player. Hit-lists keep a projectile from damaging the same enemy
// identity twice in one flight; pierce accounting despawns spent shots.
func (s *Sim) resolveCollisions() {
	for _, p := range s.projectiles {
		if !p.canHit() {
			continue
		}
		s.collideProjectile(p)
	}
	s.collidePlayer()
}

func (s *Sim) collideProjectile(p *Projectile) {
	radius := p.HitRadius()

	s.enemies.ForEach(func(h Handle, e *Enemy) {
		if p.dead || p.alreadyHit(h) {
			return
		}
		// Enemies killed earlier this tick are corpses waiting for the
		// reap pass; they must not soak pierce.
		if e.HP <= 0 {
			return
		}
		if !core.CirclesOverlap(p.Pos, radius, e.Pos, e.Radius) {
			return
		}
		s.applyHit(e, p.Element, p.Damage, p.Pos)
		p.markHit(h)
	})
}

// collidePlayer applies contact damage from overlapping enemies. The
// invulnerability window means at most one contact hit lands per window
// no matter how many enemies overlap.
func (s *Sim) collidePlayer() {
	p := &s.player
	if p.InvulnTimer > 0 {
		return
	}

	var hitBy *Enemy
	s.enemies.ForEach(func(_ Handle, e *Enemy) {
		if hitBy != nil {
			return
		}
		if core.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
			hitBy = e
		}
	})
	if hitBy == nil {
		return
	}

	p.HP -= hitBy.ContactDamage
	p.InvulnTimer = s.cfg.Player.InvulnFrames
	p.FlashTimer = s.cfg.Enemies.HitFlashFrames

	push := p.Pos.Sub(hitBy.Pos).Normalize().Scale(s.cfg.Player.ContactKnockback)
	p.Knock = p.Knock.Add(push)

	if p.HP <= 0 {
		p.HP = 0
		s.finishRun(StateGameOver)
	}
}
