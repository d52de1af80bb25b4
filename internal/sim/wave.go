package sim

import (
	"math"

	"github.com/vovakirdan/cardstorm/internal/core"
)

// waveDirector drives the spawn schedule: per-wave quotas, the spawn
// cadence, boss cadence, and the breather between waves.
type waveDirector struct {
	wave       int
	quota      int     // enemies left to spawn this wave
	spawnTimer float64 // frames until the next spawn
	interTimer float64 // frames of inter-wave delay remaining
	inBreak    bool    // between waves
	bossDue    bool    // this wave's boss has not spawned yet
	bossHandle Handle
}

// bossWave reports whether the numbered wave carries a boss.
func (s *Sim) bossWave(wave int) bool {
	every := s.cfg.Waves.BossEvery
	return every > 0 && wave%every == 0
}

// startWave arms the director for the numbered wave. Boss announcements
// are not emitted here; they belong to the break preceding the wave.
func (s *Sim) startWave(wave int) {
	w := &s.cfg.Waves

	s.waves.wave = wave
	s.waves.quota = w.BaseEnemies + w.EnemiesPerWave*wave
	s.waves.spawnTimer = 0
	s.waves.inBreak = false
	s.waves.bossDue = s.bossWave(wave)
	s.waves.bossHandle = NoHandle

	s.emit(Event{Kind: EventWaveStarted, Wave: wave})
}

// tickWaves advances the director: inter-wave countdown, spawn cadence
// while quota remains, and wave completion once the field is clear.
func (s *Sim) tickWaves(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate
	w := &s.cfg.Waves

	if s.waves.inBreak {
		s.waves.interTimer -= frames
		if s.waves.interTimer <= 0 {
			s.startWave(s.waves.wave + 1)
		}
		return
	}

	if s.waves.bossDue {
		s.waves.bossHandle = s.spawnEnemy(EnemyBoss)
		s.waves.bossDue = false
	}

	if s.waves.quota > 0 && s.enemies.Live() < w.SpawnCap {
		s.waves.spawnTimer -= frames
		if s.waves.spawnTimer <= 0 {
			s.spawnEnemy(s.rollEnemyKind())
			s.waves.quota--
			s.waves.spawnTimer = w.SpawnIntervalFrames
		}
	}

	if s.waves.quota == 0 && s.enemies.Live() == 0 {
		s.emit(Event{Kind: EventWaveCleared, Wave: s.waves.wave})
		if w.VictoryWave > 0 && s.waves.wave >= w.VictoryWave {
			s.finishRun(StateVictory)
			return
		}
		s.waves.inBreak = true
		s.waves.interTimer = w.InterWaveDelayFrames
		// The breather doubles as the boss telegraph: announce now so the
		// warning lands a full inter-wave delay before the spawn.
		if s.bossWave(s.waves.wave + 1) {
			s.emit(Event{Kind: EventBossIncoming, Wave: s.waves.wave + 1, Name: s.cfg.Enemies.BossName})
		}
	}
}

// rollEnemyKind picks a spawn kind from the wave-shifted weight mix.
// Early waves are all crawlers; runners and brutes gain weight per wave.
func (s *Sim) rollEnemyKind() EnemyKind {
	w := &s.cfg.Waves
	wave := float64(s.waves.wave)

	crawler := 1.0
	runner := w.RunnerWeightPerWave * wave
	brute := w.BruteWeightPerWave * wave

	r := s.rng.Float64() * (crawler + runner + brute)
	switch {
	case r < crawler:
		return EnemyCrawler
	case r < crawler+runner:
		return EnemyRunner
	default:
		return EnemyBrute
	}
}

// waveHP is the super-linear per-enemy HP curve.
func (s *Sim) waveHP() float64 {
	w := &s.cfg.Waves
	wave := float64(s.waves.wave)
	return w.HPBase * (1 + w.HPGrowth*math.Pow(wave, w.HPExponent))
}

// spawnEnemy materializes one enemy of the kind at a random bearing on
// the spawn ring around the player, pushed out of any obstacle there.
func (s *Sim) spawnEnemy(kind EnemyKind) Handle {
	en := &s.cfg.Enemies
	w := &s.cfg.Waves

	angle := s.rng.Float64() * 2 * math.Pi
	pos := s.player.Pos.Add(core.FromAngle(angle).Scale(w.SpawnRadius))

	hp := s.waveHP()
	e := Enemy{
		Radius:        en.BaseRadius,
		Kind:          kind,
		Speed:         en.BaseSpeed,
		ContactDamage: en.ContactDamage + en.ContactDamageGrowth*float64(s.waves.wave),
		SpawnWave:     s.waves.wave,
	}

	switch kind {
	case EnemyRunner:
		e.Speed *= en.RunnerSpeedMult
		hp *= en.RunnerHPMult
	case EnemyBrute:
		e.Speed *= en.BruteSpeedMult
		hp *= en.BruteHPMult
		e.Radius *= en.BruteRadiusMult
	case EnemyBoss:
		e.Speed = en.BossSpeed
		hp *= en.BossHPMult
		e.Radius *= en.BossRadiusMult
		e.ContactDamage = en.BossContactDamage
		e.boss = &bossState{phase: bossRoam, timer: en.BossChargeIntervalFrames}
	}

	e.HP = hp
	e.MaxHP = hp
	e.Pos = s.terrain.resolve(pos, e.Radius)

	return s.enemies.Add(e)
}

// tickEnemies steers every enemy toward the player, applies knockback
// decay, and keeps them out of obstacles. Bosses run their own charge
// machine instead of plain pursuit.
func (s *Sim) tickEnemies(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate
	decay := core.ClampF(1-s.cfg.Enemies.KnockbackDecay*dt, 0, 1)

	s.enemies.ForEach(func(_ Handle, e *Enemy) {
		var steer core.Vec2
		if e.boss != nil {
			steer = s.tickBoss(e, frames)
		} else {
			steer = s.player.Pos.Sub(e.Pos).Normalize().Scale(e.Speed)
		}

		e.Vel = steer
		e.Pos = e.Pos.Add(e.Vel.Add(e.Knock).Scale(dt))
		e.Knock = e.Knock.Scale(decay)
		e.Pos = s.terrain.resolve(e.Pos, e.Radius)
	})
}

// tickBoss advances the windup/charge/recover machine and returns the
// boss's steering velocity for this tick. The charge direction locks at
// the end of windup and never re-aims mid-dash.
func (s *Sim) tickBoss(e *Enemy, frames float64) core.Vec2 {
	en := &s.cfg.Enemies
	b := e.boss

	b.timer -= frames
	switch b.phase {
	case bossRoam:
		if b.timer <= 0 {
			b.phase = bossWindup
			b.timer = en.BossWindupFrames
			return core.Vec2{}
		}
		return s.player.Pos.Sub(e.Pos).Normalize().Scale(e.Speed)

	case bossWindup:
		if b.timer <= 0 {
			b.phase = bossCharge
			b.timer = en.BossChargeFrames
			b.chargeDir = s.player.Pos.Sub(e.Pos).Normalize()
		}
		// Telegraph: hold still while winding up.
		return core.Vec2{}

	case bossCharge:
		if b.timer <= 0 {
			b.phase = bossRoam
			b.timer = en.BossChargeIntervalFrames
			return core.Vec2{}
		}
		return b.chargeDir.Scale(en.BossChargeSpeed)
	}
	return core.Vec2{}
}

// reapEnemies removes everything at zero HP, drops XP orbs, and counts
// kills. Boss deaths end their health banner.
func (s *Sim) reapEnemies() {
	var dead []Handle
	s.enemies.ForEach(func(h Handle, e *Enemy) {
		if e.HP <= 0 {
			dead = append(dead, h)
		}
	})

	for _, h := range dead {
		e := s.enemies.Get(h)
		if e == nil {
			continue
		}
		s.spawnOrb(e.Pos, e.Kind)
		s.runKills++
		if e.boss != nil {
			s.emit(Event{Kind: EventBossDefeated, Wave: s.waves.wave, Name: s.cfg.Enemies.BossName})
			s.waves.bossHandle = NoHandle
		}
		s.enemies.Remove(h)
	}
}
