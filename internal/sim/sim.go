// Package sim implements the cardstorm survival arena: an ordered
// card-inventory weapon system, projectile and persistent-weapon state
// machines, elemental status interactions, deterministic chunked terrain,
// and a wave director, all advanced by a single Advance(dt) call.
//
// The package owns no I/O and no clock. The platform layer feeds it real
// elapsed time, issues commands between ticks, and renders from
// snapshots; every timer inside is expressed in frames at the reference
// tick rate so the outcome is frame-rate independent.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
)

// State is the top-level lifecycle state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePreLevelUp // threshold crossed, world winding down in slow motion
	StateLevelUp    // frozen, card offer on screen
	StatePaused
	StateGameOver
	StateVictory
)

// String returns the display name of the state.
func (st State) String() string {
	switch st {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePreLevelUp:
		return "PreLevelUp"
	case StateLevelUp:
		return "LevelUp"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// offerSize is how many cards a level-up presents.
const offerSize = 3

// CardSource supplies level-up choices. The catalog lives outside the
// engine so content can evolve without touching simulation code.
type CardSource interface {
	// Offer returns up to n cards to choose from, given the current
	// inventory. Returning fewer than n (or none) is allowed.
	Offer(rng *rand.Rand, inventory []Card, n int) []Card
}

// Sim is the whole simulation behind one run. Not safe for concurrent
// use; the platform calls commands and Advance from a single goroutine.
type Sim struct {
	cfg    *config.SimConfig
	rng    *rand.Rand
	source CardSource

	state     State
	prevState State // state to return to after pause

	player      Player
	enemies     enemyArena
	projectiles []*Projectile
	orbs        []Orb
	terrain     *terrain
	waves       waveDirector

	pending []pendingAction
	flashes []flash
	bolts   []bolt

	artifactTimers map[CardID]*artifactState
	persistWanted  map[CardID]int

	// Scratch buffers reused across ticks to keep the hot path clean.
	cardScratch   []Card
	effectScratch []activeEffect
	angleScratch  []float64

	events []Event
	offer  []Card

	nextCardID    CardID
	statsTimer    float64
	preLevelTimer float64
	runFrames     float64
	runKills      int
}

// New builds a simulation in the menu state. The seed drives spawn and
// offer randomness; terrain determinism comes from the terrain config's
// own seed.
func New(cfg *config.SimConfig, seed int64, source CardSource) *Sim {
	s := &Sim{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		source: source,
		state:  StateMenu,
	}
	s.resetRun()
	return s
}

// resetRun rebuilds all per-run state from config.
func (s *Sim) resetRun() {
	pc := &s.cfg.Player

	s.player = Player{
		Radius:      pc.Radius,
		HP:          pc.MaxHP,
		MaxHP:       pc.MaxHP,
		Speed:       pc.Speed,
		DamageMul:   1,
		PickupRange: pc.PickupRange,
		Level:       1,
		NextLevelXP: pc.BaseXPToLevel,
		AimPoint:    core.V(1, 0),
	}

	s.enemies = enemyArena{}
	s.projectiles = nil
	s.orbs = nil
	s.pending = nil
	s.flashes = nil
	s.bolts = nil
	s.offer = nil
	s.terrain = newTerrain(&s.cfg.Terrain)
	s.terrain.ensureAround(s.player.Pos)
	s.waves = waveDirector{bossHandle: NoHandle}
	s.artifactTimers = make(map[CardID]*artifactState)
	s.persistWanted = make(map[CardID]int)
	s.nextCardID = 1
	s.statsTimer = 0
	s.preLevelTimer = 0
	s.runFrames = 0
	s.runKills = 0
}

// setState transitions and announces the new state.
func (s *Sim) setState(st State) {
	if s.state == st {
		return
	}
	s.state = st
	s.emit(Event{Kind: EventStateChanged, State: st})
}

// Start begins a fresh run from the menu or from a finished run.
func (s *Sim) Start() {
	s.resetRun()
	s.setState(StatePlaying)
	s.startWave(1)
}

// finishRun ends the run in the given terminal state and publishes the
// final tallies for the scoreboard.
func (s *Sim) finishRun(st State) {
	s.setState(st)
	s.emit(Event{Kind: EventRunEnded, State: st, Stats: s.Stats()})
}

// Pause freezes the simulation; only live states can pause.
func (s *Sim) Pause() {
	if s.state != StatePlaying && s.state != StatePreLevelUp {
		return
	}
	s.prevState = s.state
	s.setState(StatePaused)
}

// Resume returns from pause to whatever live state was interrupted.
func (s *Sim) Resume() {
	if s.state != StatePaused {
		return
	}
	s.setState(s.prevState)
}

// SetMoveIntent sets the player steering vector; it is normalized so
// diagonals are no faster. Zero means halt.
func (s *Sim) SetMoveIntent(v core.Vec2) {
	s.player.MoveIntent = v.Normalize()
}

// SetAimPoint sets the world-space free-aim target used in manual mode.
func (s *Sim) SetAimPoint(p core.Vec2) {
	s.player.AimPoint = p
}

// SetAimMode switches targeting and announces the change.
func (s *Sim) SetAimMode(m AimMode) {
	if s.player.AimMode == m {
		return
	}
	s.player.AimMode = m
	s.emit(Event{Kind: EventAimModeChanged, AimMode: m})
}

// GrantCard assigns the card a unique ID and adds it to the inventory.
// Stat payloads fold into the player immediately and never occupy a
// slot; the sweep only ever sees artifacts, effects, and buffs.
func (s *Sim) GrantCard(c Card) CardID {
	c.ID = s.nextCardID
	s.nextCardID++

	if c.Kind == KindStat {
		s.player.applyStatCard(c.Stat)
		return c.ID
	}
	s.player.Inventory = append(s.player.Inventory, c)
	return c.ID
}

// RemoveCardAt removes the card at the index. Persistent weapons owned
// by the card despawn on the next sweep; its cooldown state is dropped
// now.
func (s *Sim) RemoveCardAt(i int) bool {
	inv := s.player.Inventory
	if i < 0 || i >= len(inv) {
		return false
	}
	s.dropArtifactState(inv[i].ID)
	s.player.Inventory = append(inv[:i], inv[i+1:]...)
	return true
}

// ReorderInventory moves the card at from to position to, shifting the
// cards between them. Order is the combo language, so this is the main
// strategic verb.
func (s *Sim) ReorderInventory(from, to int) bool {
	inv := s.player.Inventory
	if from < 0 || from >= len(inv) || to < 0 || to >= len(inv) || from == to {
		return false
	}
	c := inv[from]
	inv = append(inv[:from], inv[from+1:]...)
	inv = append(inv, Card{})
	copy(inv[to+1:], inv[to:])
	inv[to] = c
	s.player.Inventory = inv
	return true
}

// Inventory returns a copy of the ordered card list.
func (s *Sim) Inventory() []Card {
	out := make([]Card, len(s.player.Inventory))
	copy(out, s.player.Inventory)
	return out
}

// SetWave jumps the director to the given wave: the field is cleared and
// the wave starts immediately. Debug/balancing aid.
func (s *Sim) SetWave(wave int) {
	if wave < 1 {
		wave = 1
	}
	var live []Handle
	s.enemies.ForEach(func(h Handle, _ *Enemy) {
		live = append(live, h)
	})
	for _, h := range live {
		s.enemies.Remove(h)
	}
	s.orbs = s.orbs[:0]
	s.startWave(wave)
	// A jump skips the break that would normally carry the announcement.
	if s.waves.bossDue {
		s.emit(Event{Kind: EventBossIncoming, Wave: wave, Name: s.cfg.Enemies.BossName})
	}
}

// ChooseLevelUpCard consumes the pending offer: grants the chosen card,
// applies the level, and resumes play. Out-of-range picks skip the grant
// but still level up, so a run can never wedge on a bad index.
func (s *Sim) ChooseLevelUpCard(i int) {
	if s.state != StateLevelUp {
		return
	}
	if i >= 0 && i < len(s.offer) {
		s.GrantCard(s.offer[i])
	}
	s.offer = nil
	s.levelUp()

	// Banked XP past the next threshold re-enters the wind-down.
	if s.player.XP >= s.player.NextLevelXP {
		s.setState(StatePreLevelUp)
		s.preLevelTimer = s.cfg.Engine.PreLevelUpFrames
		return
	}
	s.setState(StatePlaying)
}

// openLevelUp freezes the world and presents the card offer. An empty
// catalog response levels up silently and resumes.
func (s *Sim) openLevelUp() {
	s.offer = s.source.Offer(s.rng, s.player.Inventory, offerSize)
	if len(s.offer) == 0 {
		s.levelUp()
		s.setState(StatePlaying)
		return
	}
	s.setState(StateLevelUp)
	s.emit(Event{Kind: EventCardOffer, Offer: snapshotCards(s.offer)})
}

func snapshotCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

// Advance moves the simulation forward by dt seconds of real time.
// Oversized deltas (stalls, debugger pauses) are clamped so the world
// never teleports. Frozen states ignore time entirely.
func (s *Sim) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	if limit := s.cfg.Engine.MaxDeltaSeconds; limit > 0 && dt > limit {
		dt = limit
	}

	switch s.state {
	case StatePlaying:
		s.step(dt)
	case StatePreLevelUp:
		// World runs in slow motion while the wind-down timer drains in
		// real time.
		s.step(dt * s.cfg.Engine.PreLevelUpTimeScale)
		s.preLevelTimer -= dt * s.cfg.Engine.ReferenceTickRate
		if s.preLevelTimer <= 0 {
			s.openLevelUp()
		}
	}
}

// step is one tick of the live pipeline. Stage order is fixed: spawning
// and movement precede weapon resolution, damage precedes status decay,
// and reaping precedes pickups so fresh orbs exist before magnetism runs.
func (s *Sim) step(dt float64) {
	frames := dt * s.cfg.Engine.ReferenceTickRate
	s.runFrames += frames

	s.tickWaves(dt)
	if s.state != StatePlaying && s.state != StatePreLevelUp {
		return // victory can end the run mid-tick
	}
	s.tickEnemies(dt)
	s.movePlayer(dt)

	s.sweepInventory(dt)
	s.tickPending(dt)
	s.tickProjectiles(dt)
	s.resolveCollisions()
	if s.state != StatePlaying && s.state != StatePreLevelUp {
		return // so can death by contact
	}
	s.tickStatus(dt)
	s.reapEnemies()
	s.tickPickups(dt)
	s.tickCosmetics(dt)
	s.tickPlayerTimers(frames)

	s.statsTimer -= frames
	if s.statsTimer <= 0 {
		s.statsTimer = s.cfg.Engine.StatsIntervalFrames
		s.emit(Event{Kind: EventStatsUpdated, Stats: s.Stats()})
	}
}

// movePlayer integrates steering plus decaying knockback and keeps the
// player out of obstacles, generating terrain ahead of them.
func (s *Sim) movePlayer(dt float64) {
	p := &s.player
	vel := p.MoveIntent.Scale(p.Speed).Add(p.Knock)
	p.Pos = p.Pos.Add(vel.Scale(dt))
	p.Knock = p.Knock.Scale(core.ClampF(1-s.cfg.Player.KnockbackDecay*dt, 0, 1))

	s.terrain.ensureAround(p.Pos)
	p.Pos = s.terrain.resolve(p.Pos, p.Radius)
}

func (s *Sim) tickPlayerTimers(frames float64) {
	p := &s.player
	if p.InvulnTimer > 0 {
		p.InvulnTimer -= frames
	}
	if p.FlashTimer > 0 {
		p.FlashTimer -= frames
	}
}

// CurrentState reports the lifecycle state.
func (s *Sim) CurrentState() State {
	return s.state
}
