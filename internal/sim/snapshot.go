package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// Cosmetic lifetimes, in frames at the reference tick rate.
const (
	stormFlashFrames = 12.0
	pullFlashFrames  = 10.0
	boltFlashFrames  = 8.0
)

// flash is a transient area marker: storm bursts and screen pulls.
type flash struct {
	Pos    core.Vec2
	Radius float64
	Timer  float64
	Life   float64 // starting Timer, so fades scale to their own lifetime
	Color  core.Color
}

// bolt is a transient chain-lightning segment.
type bolt struct {
	From  core.Vec2
	To    core.Vec2
	Timer float64
	Color core.Color
}

// tickCosmetics decays flash and bolt timers and drops the expired ones.
func (s *Sim) tickCosmetics(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate

	flashes := s.flashes[:0]
	for _, f := range s.flashes {
		f.Timer -= frames
		if f.Timer > 0 {
			flashes = append(flashes, f)
		}
	}
	s.flashes = flashes

	bolts := s.bolts[:0]
	for _, b := range s.bolts {
		b.Timer -= frames
		if b.Timer > 0 {
			bolts = append(bolts, b)
		}
	}
	s.bolts = bolts
}

// EventKind labels a simulation event drained by the platform layer.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventWaveStarted
	EventWaveCleared
	EventBossIncoming
	EventBossDefeated
	EventAimModeChanged
	EventStatsUpdated
	EventCardOffer
	EventRunEnded
)

// Event is a tagged union; only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	State   State
	Wave    int
	Name    string
	AimMode AimMode
	Stats   StatsSnapshot
	Offer   []Card
}

func (s *Sim) emit(ev Event) {
	s.events = append(s.events, ev)
}

// DrainEvents returns all events accumulated since the last drain, in
// emission order, and clears the queue.
func (s *Sim) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]Event, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// StatsSnapshot is the low-rate HUD view: progression and run totals.
type StatsSnapshot struct {
	State       State
	Wave        int
	Level       int
	XP          float64
	NextLevelXP float64
	HP          float64
	MaxHP       float64
	Kills       int
	TimeSeconds float64
	AimMode     AimMode
	CardCount   int
}

// Stats builds the current HUD snapshot.
func (s *Sim) Stats() StatsSnapshot {
	return StatsSnapshot{
		State:       s.state,
		Wave:        s.waves.wave,
		Level:       s.player.Level,
		XP:          s.player.XP,
		NextLevelXP: s.player.NextLevelXP,
		HP:          s.player.HP,
		MaxHP:       s.player.MaxHP,
		Kills:       s.runKills,
		TimeSeconds: s.runFrames / s.cfg.Engine.ReferenceTickRate,
		AimMode:     s.player.AimMode,
		CardCount:   len(s.player.Inventory),
	}
}

// PlayerView is the per-frame player state the renderer needs.
type PlayerView struct {
	Pos      core.Vec2
	Radius   float64
	HP       float64
	MaxHP    float64
	Invuln   bool
	Flash    bool
	AimMode  AimMode
	AimPoint core.Vec2
}

// EnemyView is one enemy as seen by the renderer.
type EnemyView struct {
	Pos         core.Vec2
	Radius      float64
	Kind        EnemyKind
	HPFrac      float64
	Burning     bool
	Wet         bool
	Electrified bool
	Flash       bool
	Windup      bool // boss telegraphing a charge
}

// ProjectileView is one projectile or persistent weapon.
type ProjectileView struct {
	Pos       core.Vec2
	Radius    float64
	Archetype Archetype
	Element   Element
	Color     core.Color
	Opacity   float64
}

// OrbView is one XP pickup.
type OrbView struct {
	Pos    core.Vec2
	Tier   int
	Magnet bool
}

// FlashView is a transient area marker with remaining-life fraction.
type FlashView struct {
	Pos    core.Vec2
	Radius float64
	Frac   float64
	Color  core.Color
}

// BoltView is a chain-lightning segment.
type BoltView struct {
	From  core.Vec2
	To    core.Vec2
	Color core.Color
}

// FrameSnapshot is the full per-frame world view. Everything is a copy;
// the caller may hold it across ticks.
type FrameSnapshot struct {
	State       State
	Wave        int
	InBreak     bool
	Player      PlayerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Orbs        []OrbView
	Obstacles   []Obstacle
	Flashes     []FlashView
	Bolts       []BoltView
	BossHPFrac  float64 // negative when no boss is alive
	Offer       []Card  // pending level-up choices, if any
}

// Frame builds the full per-frame world view.
func (s *Sim) Frame() FrameSnapshot {
	fr := FrameSnapshot{
		State:      s.state,
		Wave:       s.waves.wave,
		InBreak:    s.waves.inBreak,
		BossHPFrac: -1,
		Player: PlayerView{
			Pos:      s.player.Pos,
			Radius:   s.player.Radius,
			HP:       s.player.HP,
			MaxHP:    s.player.MaxHP,
			Invuln:   s.player.InvulnTimer > 0,
			Flash:    s.player.FlashTimer > 0,
			AimMode:  s.player.AimMode,
			AimPoint: s.player.AimPoint,
		},
	}

	s.enemies.ForEach(func(h Handle, e *Enemy) {
		v := EnemyView{
			Pos:         e.Pos,
			Radius:      e.Radius,
			Kind:        e.Kind,
			HPFrac:      e.HP / e.MaxHP,
			Burning:     e.Status.Burning,
			Wet:         e.Status.Wet,
			Electrified: e.Status.Electrified,
			Flash:       e.FlashTimer > 0,
		}
		if e.boss != nil {
			v.Windup = e.boss.phase == bossWindup
			fr.BossHPFrac = e.HP / e.MaxHP
		}
		fr.Enemies = append(fr.Enemies, v)
	})

	for _, p := range s.projectiles {
		if p.dead {
			continue
		}
		fr.Projectiles = append(fr.Projectiles, ProjectileView{
			Pos:       p.Pos,
			Radius:    p.HitRadius(),
			Archetype: p.Archetype,
			Element:   p.Element,
			Color:     p.Color,
			Opacity:   p.Opacity,
		})
	}

	for _, o := range s.orbs {
		fr.Orbs = append(fr.Orbs, OrbView{Pos: o.Pos, Tier: o.Tier, Magnet: o.Magnet})
	}

	s.terrain.forEachNear(s.player.Pos, func(o Obstacle) {
		fr.Obstacles = append(fr.Obstacles, o)
	})

	for _, f := range s.flashes {
		fr.Flashes = append(fr.Flashes, FlashView{
			Pos:    f.Pos,
			Radius: f.Radius,
			Frac:   f.Timer / f.Life,
			Color:  f.Color,
		})
	}
	for _, b := range s.bolts {
		fr.Bolts = append(fr.Bolts, BoltView{From: b.From, To: b.To, Color: b.Color})
	}

	if s.state == StateLevelUp {
		fr.Offer = append(fr.Offer[:0], s.offer...)
	}

	return fr
}
