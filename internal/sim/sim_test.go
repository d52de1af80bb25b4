package sim

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
)

func TestStartTransitionsToPlaying(t *testing.T) {
	s := newTestSim(1)
	if s.CurrentState() != StateMenu {
		t.Fatalf("fresh sim state = %v, want Menu", s.CurrentState())
	}

	s.Start()

	if s.CurrentState() != StatePlaying {
		t.Fatalf("state after Start = %v, want Playing", s.CurrentState())
	}
	if s.waves.wave != 1 {
		t.Fatalf("wave = %d, want 1", s.waves.wave)
	}

	var sawState bool
	for _, ev := range s.DrainEvents() {
		if ev.Kind == EventStateChanged && ev.State == StatePlaying {
			sawState = true
		}
	}
	if !sawState {
		t.Fatalf("Start must announce the state change")
	}
}

func TestAdvanceIgnoredWhileFrozen(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.Advance(0.5)
	s.Pause()

	before := s.runFrames
	s.Advance(0.5)
	if s.runFrames != before {
		t.Fatalf("paused sim advanced by %v frames", s.runFrames-before)
	}

	s.Resume()
	if s.CurrentState() != StatePlaying {
		t.Fatalf("resume must return to the interrupted state")
	}
	s.Advance(0.5)
	if s.runFrames == before {
		t.Fatalf("resumed sim did not advance")
	}
}

func TestOversizedDeltaIsClamped(t *testing.T) {
	s := newTestSim(1)
	s.Start()

	s.Advance(10) // debugger stall

	maxFrames := s.cfg.Engine.MaxDeltaSeconds * s.cfg.Engine.ReferenceTickRate
	if s.runFrames > maxFrames+1e-9 {
		t.Fatalf("advanced %v frames from one call, clamp is %v", s.runFrames, maxFrames)
	}
}

func TestGrantStatCardAppliesImmediately(t *testing.T) {
	s := newTestSim(1)
	s.player.HP = 50

	s.GrantCard(statCard(30, 20, 10))

	if got, want := s.player.MaxHP, 130.0; got != want {
		t.Errorf("MaxHP = %v, want %v", got, want)
	}
	if got, want := s.player.HP, 80.0; got != want {
		t.Errorf("HP = %v, want %v (heals the growth)", got, want)
	}
	if got, want := s.player.DamageMul, 1.2; got != want {
		t.Errorf("DamageMul = %v, want %v", got, want)
	}
	if len(s.player.Inventory) != 0 {
		t.Errorf("stat card must not occupy a slot")
	}
}

func TestGrantArtifactOccupiesSlot(t *testing.T) {
	s := newTestSim(1)

	s.GrantCard(statCard(10, 0, 0))
	id := s.GrantCard(artifactCard("Bolt", ArchStraight, ElemPhysical, 60, 10))

	inv := s.Inventory()
	if len(inv) != 1 {
		t.Fatalf("inventory = %d cards, want just the artifact", len(inv))
	}
	if inv[0].ID != id {
		t.Fatalf("inventory holds ID %d, want %d", inv[0].ID, id)
	}
}

func TestThresholdCrossingAnnouncesWindDown(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.DrainEvents()

	s.gainXP(s.player.NextLevelXP)

	if s.CurrentState() != StatePreLevelUp {
		t.Fatalf("state = %v, want PreLevelUp", s.CurrentState())
	}
	var saw bool
	for _, ev := range s.DrainEvents() {
		if ev.Kind == EventStateChanged && ev.State == StatePreLevelUp {
			saw = true
		}
	}
	if !saw {
		t.Fatalf("crossing the XP threshold must announce the state change")
	}
}

func TestLevelUpFlow(t *testing.T) {
	offer := []Card{
		artifactCard("Bolt", ArchStraight, ElemPhysical, 60, 10),
		effectCard(LogicFan, 3),
		buffCard(20, 0, 0),
	}
	cfg := config.DefaultSimConfig()
	s := New(&cfg, 1, listSource{cards: offer})
	s.Start()
	s.DrainEvents()

	s.gainXP(s.player.NextLevelXP)
	if s.CurrentState() != StatePreLevelUp {
		t.Fatalf("state = %v, want PreLevelUp", s.CurrentState())
	}

	// Ride out the wind-down in real time.
	for i := 0; i < int(cfg.Engine.PreLevelUpFrames)+2; i++ {
		s.Advance(testDT)
	}
	if s.CurrentState() != StateLevelUp {
		t.Fatalf("state = %v, want LevelUp", s.CurrentState())
	}

	var sawOffer bool
	for _, ev := range s.DrainEvents() {
		if ev.Kind == EventCardOffer && len(ev.Offer) == 3 {
			sawOffer = true
		}
	}
	if !sawOffer {
		t.Fatalf("level-up must publish the card offer")
	}

	s.ChooseLevelUpCard(0)
	if s.CurrentState() != StatePlaying {
		t.Fatalf("state after choice = %v, want Playing", s.CurrentState())
	}
	if s.player.Level != 2 {
		t.Fatalf("level = %d, want 2", s.player.Level)
	}
	inv := s.Inventory()
	if len(inv) != 1 || inv[0].Name != "Bolt" {
		t.Fatalf("chosen card not granted, inventory = %+v", inv)
	}
}

func TestLevelUpWithEmptyCatalogResumesSilently(t *testing.T) {
	s := newTestSim(1)
	s.Start()

	s.gainXP(s.player.NextLevelXP)
	for i := 0; i < int(s.cfg.Engine.PreLevelUpFrames)+2; i++ {
		s.Advance(testDT)
	}

	if s.CurrentState() != StatePlaying {
		t.Fatalf("state = %v, want Playing (no offer available)", s.CurrentState())
	}
	if s.player.Level != 2 {
		t.Fatalf("level = %d, want 2", s.player.Level)
	}
}

func TestPreLevelUpRunsInSlowMotion(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.Advance(testDT)
	base := s.runFrames

	s.gainXP(s.player.NextLevelXP)
	s.Advance(testDT)

	scaled := s.runFrames - base
	if scaled >= 1 {
		t.Fatalf("pre-level-up tick advanced %v frames, want scaled down", scaled)
	}
	want := s.cfg.Engine.PreLevelUpTimeScale
	if scaled < want-1e-9 || scaled > want+1e-9 {
		t.Fatalf("scaled frames = %v, want %v", scaled, want)
	}
}

func TestAimModeToggleEmitsEvent(t *testing.T) {
	s := newTestSim(1)
	s.SetAimMode(AimManual)
	s.SetAimMode(AimManual) // no-op repeat

	events := s.DrainEvents()
	n := 0
	for _, ev := range events {
		if ev.Kind == EventAimModeChanged {
			n++
			if ev.AimMode != AimManual {
				t.Fatalf("event mode = %v, want Manual", ev.AimMode)
			}
		}
	}
	if n != 1 {
		t.Fatalf("aim events = %d, want exactly 1", n)
	}
}

func TestManualAimDirectsFire(t *testing.T) {
	s := newTestSim(1)
	s.SetAimMode(AimManual)
	s.SetAimPoint(core.V(0, 10)) // straight up
	s.GrantCard(artifactCard("Bolt", ArchStraight, ElemPhysical, 60, 10))

	s.sweepInventory(testDT)

	if got := s.liveProjectiles(); got != 1 {
		t.Fatalf("projectiles = %d, want 1", got)
	}
	v := s.projectiles[0].Vel
	if v.Y <= 0 || math.Abs(v.X) > 1e-9 {
		t.Fatalf("velocity %v does not point at the aim point", v)
	}
}

func TestAutoAimTracksNearestEnemy(t *testing.T) {
	s := newTestSim(1)
	s.addEnemyAt(core.V(-8, 0), 100)
	s.addEnemyAt(core.V(4, 0), 100) // nearest
	s.GrantCard(artifactCard("Bolt", ArchStraight, ElemPhysical, 60, 10))

	s.sweepInventory(testDT)

	v := s.projectiles[0].Vel
	if v.X <= 0 {
		t.Fatalf("velocity %v must point at the nearest enemy", v)
	}
}

func TestMoveIntentIsNormalized(t *testing.T) {
	s := newTestSim(1)
	s.SetMoveIntent(core.V(3, 4))
	if d := s.player.MoveIntent.Len(); d < 1-1e-9 || d > 1+1e-9 {
		t.Fatalf("move intent length = %v, want 1", d)
	}

	s.SetMoveIntent(core.V(0, 0))
	if !s.player.MoveIntent.IsZero() {
		t.Fatalf("zero intent must halt")
	}
}

func TestSetWaveClearsTheField(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.addEnemyAt(core.V(5, 0), 100)
	s.orbs = append(s.orbs, Orb{Pos: core.V(1, 0), Value: 1})

	s.SetWave(7)

	if s.waves.wave != 7 {
		t.Fatalf("wave = %d, want 7", s.waves.wave)
	}
	if s.enemies.Live() != 0 || len(s.orbs) != 0 {
		t.Fatalf("field not cleared on wave jump")
	}
}

func TestDeterminismWithSameSeed(t *testing.T) {
	run := func() FrameSnapshot {
		s := newTestSim(99)
		s.Start()
		s.GrantCard(effectCard(LogicFan, 9))
		s.GrantCard(artifactCard("Bolt", ArchStraight, ElemFire, 30, 10))
		s.SetMoveIntent(core.V(1, 0))
		for i := 0; i < 600; i++ {
			s.Advance(testDT)
		}
		return s.Frame()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical seeds and inputs diverged")
	}
}

func TestFrameRateIndependence(t *testing.T) {
	run := func(dt float64, steps int) StatsSnapshot {
		s := newTestSim(5)
		s.Start()
		s.GrantCard(artifactCard("Bolt", ArchStraight, ElemPhysical, 60, 10))
		for i := 0; i < steps; i++ {
			s.Advance(dt)
		}
		return s.Stats()
	}

	// Same three seconds of simulated time at 60 and 30 Hz.
	fast := run(1.0/60, 180)
	slow := run(1.0/30, 90)

	if fast.Wave != slow.Wave {
		t.Errorf("wave diverged: %d vs %d", fast.Wave, slow.Wave)
	}
	if math.Abs(fast.TimeSeconds-slow.TimeSeconds) > 1e-6 {
		t.Errorf("clock diverged: %v vs %v", fast.TimeSeconds, slow.TimeSeconds)
	}
}

func TestVictoryAtFinalWave(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.Waves.VictoryWave = 1
	cfg.Waves.BaseEnemies = 1
	cfg.Waves.EnemiesPerWave = 0
	s := New(&cfg, 1, nopSource{})
	s.Start()

	// Let the single enemy spawn, then kill it.
	for i := 0; i < 120 && s.waves.quota > 0; i++ {
		s.tickWaves(testDT)
	}
	s.enemies.ForEach(func(_ Handle, e *Enemy) { e.HP = 0 })
	s.reapEnemies()
	s.tickWaves(testDT)

	if s.CurrentState() != StateVictory {
		t.Fatalf("state = %v, want Victory", s.CurrentState())
	}

	var sawEnd bool
	for _, ev := range s.DrainEvents() {
		if ev.Kind == EventRunEnded && ev.State == StateVictory {
			sawEnd = true
		}
	}
	if !sawEnd {
		t.Fatalf("victory must publish the run summary")
	}
}

func TestDrainEventsClearsTheQueue(t *testing.T) {
	s := newTestSim(1)
	s.Start()

	first := s.DrainEvents()
	if len(first) == 0 {
		t.Fatalf("expected startup events")
	}
	if got := s.DrainEvents(); got != nil {
		t.Fatalf("second drain = %v, want nil", got)
	}
}

func TestFrameSnapshotIsACopy(t *testing.T) {
	s := newTestSim(1)
	s.Start()
	s.addEnemyAt(core.V(5, 0), 100)

	fr := s.Frame()
	if len(fr.Enemies) != 1 {
		t.Fatalf("enemies in frame = %d, want 1", len(fr.Enemies))
	}

	// Mutating the world must not reach into the old snapshot.
	s.enemies.ForEach(func(_ Handle, e *Enemy) { e.Pos = core.V(50, 50) })
	if fr.Enemies[0].Pos != core.V(5, 0) {
		t.Fatalf("snapshot aliases live state")
	}
}

func TestRemoveCardAtBounds(t *testing.T) {
	s := newTestSim(1)
	s.GrantCard(buffCard(1, 0, 0))

	if s.RemoveCardAt(-1) || s.RemoveCardAt(1) {
		t.Fatalf("out-of-range removal must fail")
	}
	if !s.RemoveCardAt(0) {
		t.Fatalf("in-range removal must succeed")
	}
	if len(s.player.Inventory) != 0 {
		t.Fatalf("inventory not emptied")
	}
}

func TestReorderInventoryBounds(t *testing.T) {
	s := newTestSim(1)
	s.GrantCard(buffCard(1, 0, 0))
	s.GrantCard(buffCard(2, 0, 0))
	s.GrantCard(buffCard(3, 0, 0))

	if s.ReorderInventory(0, 3) || s.ReorderInventory(-1, 0) || s.ReorderInventory(1, 1) {
		t.Fatalf("invalid reorders must fail")
	}

	if !s.ReorderInventory(2, 0) {
		t.Fatalf("valid reorder failed")
	}
	inv := s.Inventory()
	if inv[0].Buff.RangePct != 3 || inv[1].Buff.RangePct != 1 || inv[2].Buff.RangePct != 2 {
		t.Fatalf("reorder produced %v %v %v", inv[0].Buff.RangePct, inv[1].Buff.RangePct, inv[2].Buff.RangePct)
	}
}
