package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/cardstorm/internal/core"
)

func TestFireIgnites(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)

	dealt := s.applyHit(e, ElemFire, 10, core.V(0, 0))

	if dealt != 10 {
		t.Fatalf("dealt = %v, want 10", dealt)
	}
	if !e.Status.Burning {
		t.Fatalf("fire hit must ignite a dry enemy")
	}
	if e.Status.BurnTimer != s.cfg.Elements.BurnDurationFrames {
		t.Fatalf("burn timer = %v, want %v", e.Status.BurnTimer, s.cfg.Elements.BurnDurationFrames)
	}
}

func TestWetSuppressesIgnition(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)

	s.applyHit(e, ElemWater, 5, core.V(0, 0))
	s.applyHit(e, ElemFire, 10, core.V(0, 0))

	if e.Status.Burning {
		t.Fatalf("wet enemy must not ignite")
	}
	if math.Abs(e.HP-85) > 1e-9 {
		t.Fatalf("HP = %v, want 85 (fire still deals its hit damage)", e.HP)
	}
}

func TestSteamBonusExtinguishes(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)

	s.applyHit(e, ElemFire, 10, core.V(0, 0))
	dealt := s.applyHit(e, ElemWater, 10, core.V(0, 0))

	want := 10 * s.cfg.Elements.SteamBonus
	if math.Abs(dealt-want) > 1e-9 {
		t.Fatalf("steam hit dealt %v, want %v", dealt, want)
	}
	if e.Status.Burning || e.Status.BurnTimer != 0 {
		t.Fatalf("steam must extinguish the burn")
	}
	if !e.Status.Wet {
		t.Fatalf("water hit must still wet the enemy")
	}
}

func TestWaterAndWindKnockAway(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)

	s.applyHit(e, ElemWind, 5, core.V(0, 0))
	if e.Knock.X <= 0 {
		t.Fatalf("knockback must point away from the impact, got %v", e.Knock)
	}

	before := e.Knock.X
	s.applyHit(e, ElemWater, 5, core.V(0, 0))
	if e.Knock.X <= before {
		t.Fatalf("water must add knockback, got %v (was %v)", e.Knock.X, before)
	}
}

func TestOppositeLightningDetonatesStorm(t *testing.T) {
	s := newTestSim(1)
	hCenter := s.addEnemyAt(core.V(5, 0), 100)
	hNear := s.addEnemyAt(core.V(7, 0), 100) // inside storm radius 9
	hFar := s.addEnemyAt(core.V(40, 0), 100)
	center := s.enemies.Get(hCenter)

	s.applyHit(center, ElemLightningA, 10, core.V(0, 0))
	if !center.Status.Electrified {
		t.Fatalf("first lightning hit must electrify")
	}

	dealt := s.applyHit(center, ElemLightningB, 10, core.V(0, 0))
	if dealt != 0 {
		t.Fatalf("storm burst replaces the direct hit, dealt = %v", dealt)
	}

	storm := s.cfg.Elements.StormDamage
	if got := s.enemies.Get(hCenter).HP; math.Abs(got-(100-10-storm)) > 1e-9 {
		t.Errorf("center HP = %v, want %v", got, 100-10-storm)
	}
	if got := s.enemies.Get(hNear).HP; math.Abs(got-(100-storm)) > 1e-9 {
		t.Errorf("near HP = %v, want %v", got, 100-storm)
	}
	if got := s.enemies.Get(hFar).HP; got != 100 {
		t.Errorf("far HP = %v, want untouched", got)
	}
	if center.Status.LightATimer != 0 || center.Status.LightBTimer != 0 {
		t.Errorf("storm must clear both lightning timers")
	}
	if len(s.flashes) == 0 {
		t.Errorf("storm must leave a flash marker")
	}
}

func TestStormSkipsFreshCorpses(t *testing.T) {
	s := newTestSim(1)
	hCenter := s.addEnemyAt(core.V(5, 0), 100)
	hCorpse := s.addEnemyAt(core.V(6, 0), 100)
	s.enemies.Get(hCorpse).HP = 0 // killed earlier this tick, not yet reaped

	s.stormBurst(s.enemies.Get(hCenter))

	if got := s.enemies.Get(hCorpse).HP; got != 0 {
		t.Fatalf("corpse HP = %v, want 0 (burst must pass over it)", got)
	}
	storm := s.cfg.Elements.StormDamage
	if got := s.enemies.Get(hCenter).HP; got != 100-storm {
		t.Fatalf("center HP = %v, want %v", got, 100-storm)
	}
}

func TestFlashFadeScalesToOwnLifetime(t *testing.T) {
	s := newTestSim(1)
	s.flashes = append(s.flashes,
		flash{Pos: core.V(0, 0), Radius: 4, Timer: pullFlashFrames, Life: pullFlashFrames},
		flash{Pos: core.V(1, 0), Radius: 9, Timer: stormFlashFrames / 2, Life: stormFlashFrames},
	)

	fr := s.Frame()

	if got := fr.Flashes[0].Frac; got != 1 {
		t.Errorf("fresh flash Frac = %v, want 1 regardless of lifetime", got)
	}
	if got := fr.Flashes[1].Frac; got != 0.5 {
		t.Errorf("half-expired flash Frac = %v, want 0.5", got)
	}
}

func TestSameColorLightningNeverStorms(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)

	s.applyHit(e, ElemLightningA, 10, core.V(0, 0))
	s.applyHit(e, ElemLightningA, 10, core.V(0, 0))

	if len(s.flashes) != 0 {
		t.Fatalf("same-color hits must not detonate")
	}
	if e.HP != 80 {
		t.Fatalf("HP = %v, want 80 (both hits land normally)", e.HP)
	}
	if e.Status.LightATimer != s.cfg.Elements.LightningTimerFrames {
		t.Fatalf("second hit must refresh the timer")
	}
}

func TestBurnDamageOverTime(t *testing.T) {
	s := newTestSim(1)
	s.waves.wave = 0
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)
	e.Status.Burning = true
	e.Status.BurnTimer = s.cfg.Elements.BurnDurationFrames

	s.tickStatus(1) // one second

	want := 100 - s.cfg.Elements.BurnDPS
	if math.Abs(e.HP-want) > 1e-9 {
		t.Fatalf("HP after 1s of burn = %v, want %v", e.HP, want)
	}
}

func TestBurnScalesWithWave(t *testing.T) {
	s := newTestSim(1)
	s.waves.wave = 10
	h := s.addEnemyAt(core.V(5, 0), 100)
	e := s.enemies.Get(h)
	e.Status.Burning = true
	e.Status.BurnTimer = s.cfg.Elements.BurnDurationFrames

	s.tickStatus(1)

	el := &s.cfg.Elements
	want := 100 - el.BurnDPS*(1+el.BurnWaveScaling*10)
	if math.Abs(e.HP-want) > 1e-9 {
		t.Fatalf("HP after 1s of wave-10 burn = %v, want %v", e.HP, want)
	}
}

func TestStatusTimersExpire(t *testing.T) {
	s := newTestSim(1)
	h := s.addEnemyAt(core.V(5, 0), 1000)
	e := s.enemies.Get(h)

	s.applyHit(e, ElemWater, 0, core.V(0, 0))
	s.applyHit(e, ElemLightningA, 0, core.V(0, 0))

	// Tick far past every duration.
	for i := 0; i < 60; i++ {
		s.tickStatus(0.5)
	}

	if e.Status.Wet || e.Status.Electrified || e.Status.LightATimer != 0 {
		t.Fatalf("status must fully expire, got %+v", e.Status)
	}
}
