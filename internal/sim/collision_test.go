package sim

import (
	"testing"

	"github.com/vovakirdan/cardstorm/internal/core"
)

func testShot(pos core.Vec2, pierce int, damage float64) *Projectile {
	return &Projectile{
		Archetype: ArchStraight,
		Element:   ElemPhysical,
		Pos:       pos,
		Radius:    0.6,
		Damage:    damage,
		Life:      90,
		MaxLife:   90,
		Pierce:    pierce,
		Scale:     1,
		Opacity:   1,
	}
}

func TestPierceOneDespawnsOnFirstHit(t *testing.T) {
	s := newTestSim(1)
	s.addEnemyAt(core.V(5, 0), 100)
	p := testShot(core.V(5, 0), 1, 10)
	s.projectiles = append(s.projectiles, p)

	s.resolveCollisions()

	if !p.dead {
		t.Fatalf("pierce-1 projectile must despawn after its hit")
	}
	var hp float64
	s.enemies.ForEach(func(_ Handle, e *Enemy) { hp = e.HP })
	if hp != 90 {
		t.Fatalf("enemy HP = %v, want 90", hp)
	}
}

func TestHitListPreventsRepeatDamage(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	p := testShot(core.V(5, 0), 999, 10)
	s.projectiles = append(s.projectiles, p)

	s.resolveCollisions()
	s.resolveCollisions()
	s.resolveCollisions()

	if got := s.enemies.Get(h).HP; got != 90 {
		t.Fatalf("enemy HP = %v, want 90 (one hit per flight)", got)
	}
	if p.dead {
		t.Fatalf("high-pierce projectile must survive")
	}
}

func TestPierceCountsDistinctEnemies(t *testing.T) {
	s := newTestSim(1)
	s.addEnemyAt(core.V(5, 0), 100)
	s.addEnemyAt(core.V(5.5, 0), 100)
	s.addEnemyAt(core.V(4.5, 0), 100)
	p := testShot(core.V(5, 0), 2, 10)
	s.projectiles = append(s.projectiles, p)

	s.resolveCollisions()

	hits := 0
	s.enemies.ForEach(func(_ Handle, e *Enemy) {
		if e.HP < 100 {
			hits++
		}
	})
	if hits != 2 {
		t.Fatalf("damaged enemies = %d, want 2 (pierce budget)", hits)
	}
	if !p.dead {
		t.Fatalf("projectile must be spent after its pierce budget")
	}
}

func TestFreshKillDoesNotSoakLaterPierce(t *testing.T) {
	s := newTestSim(1)
	first := s.addEnemyAt(core.V(5, 0), 5)
	second := s.addEnemyAt(core.V(5.8, 0), 100)

	p1 := testShot(core.V(5, 0), 1, 10)
	p2 := testShot(core.V(5, 0), 1, 10)
	s.projectiles = append(s.projectiles, p1, p2)

	// Both shots resolve in the same tick: the first kills the lead
	// enemy, so the second must pass over the corpse and spend its
	// pierce on the one still standing.
	s.resolveCollisions()

	if got := s.enemies.Get(first).HP; got != -5 {
		t.Fatalf("lead enemy HP = %v, want -5 (one hit only)", got)
	}
	if got := s.enemies.Get(second).HP; got != 90 {
		t.Fatalf("second enemy HP = %v, want 90", got)
	}
	if !p2.dead {
		t.Fatalf("second projectile must be spent on the live enemy")
	}
}

func TestStaleHandleNeverAliases(t *testing.T) {
	s := newTestSim(1)
	h1 := s.addEnemyAt(core.V(5, 0), 100)
	p := testShot(core.V(5, 0), 999, 10)
	s.projectiles = append(s.projectiles, p)

	s.resolveCollisions()
	s.enemies.Remove(h1)

	// The freed slot is reused; the new enemy must be hittable even
	// though it occupies the slot already present in the hit-list.
	h2 := s.addEnemyAt(core.V(5, 0), 100)
	if h1 == h2 {
		t.Fatalf("slot reuse must bump the generation")
	}
	s.resolveCollisions()

	if got := s.enemies.Get(h2).HP; got != 90 {
		t.Fatalf("new enemy HP = %v, want 90", got)
	}
}

func TestMinionOnlyDamagesWhileSlashing(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	p := testShot(core.V(5, 0), 999, 10)
	p.Archetype = ArchSeekMinion
	p.phase = minionIdle
	s.projectiles = append(s.projectiles, p)

	s.resolveCollisions()
	if got := s.enemies.Get(h).HP; got != 100 {
		t.Fatalf("idle minion dealt damage, HP = %v", got)
	}

	p.phase = minionSlash
	s.resolveCollisions()
	if got := s.enemies.Get(h).HP; got != 90 {
		t.Fatalf("slashing minion HP = %v, want 90", got)
	}
}

func TestContactDamageRespectsInvulnWindow(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(s.player.Pos, 100)
	s.enemies.Get(h).ContactDamage = 8

	s.collidePlayer()
	if got := s.player.HP; got != 92 {
		t.Fatalf("player HP = %v, want 92", got)
	}
	if s.player.InvulnTimer != s.cfg.Player.InvulnFrames {
		t.Fatalf("invuln window not armed")
	}

	// Still overlapping: the window blocks a second hit.
	s.collidePlayer()
	if got := s.player.HP; got != 92 {
		t.Fatalf("player HP = %v, want 92 (invulnerable)", got)
	}

	// After the window expires the next contact lands.
	s.player.InvulnTimer = 0
	s.collidePlayer()
	if got := s.player.HP; got != 84 {
		t.Fatalf("player HP = %v, want 84", got)
	}
}

func TestLethalContactEndsTheRun(t *testing.T) {
	s := newTestSim(1)
	s.state = StatePlaying
	s.player.HP = 5
	h := s.addEnemyAt(s.player.Pos, 100)
	s.enemies.Get(h).ContactDamage = 8

	s.collidePlayer()

	if s.state != StateGameOver {
		t.Fatalf("state = %v, want GameOver", s.state)
	}
	if s.player.HP != 0 {
		t.Fatalf("player HP = %v, want clamped to 0", s.player.HP)
	}
}

func TestOrbiterHitResetWindowAllowsRepeatDamage(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)

	p := testShot(core.V(5, 0), 999, 10)
	p.Archetype = ArchOrbiter
	p.orbitRadius = 5
	p.hitReset = s.cfg.Projectiles.HitResetFrames
	s.projectiles = append(s.projectiles, p)

	s.resolveCollisions()
	s.resolveCollisions()
	if got := s.enemies.Get(h).HP; got != 90 {
		t.Fatalf("HP = %v, want 90 before the reset window", got)
	}

	// Keep the enemy pinned under the blade and let the window elapse.
	e := s.enemies.Get(h)
	for i := 0; i < 60; i++ {
		s.tickOrbiter(p, testDT, 1)
		e.Pos = p.Pos
		s.resolveCollisions()
	}
	if got := e.HP; got >= 90 {
		t.Fatalf("HP = %v, want repeat damage after hit reset", got)
	}
}
