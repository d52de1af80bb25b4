package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// Handle is a generation-counted reference to an enemy slot. Handles are
// the identity key for projectile hit-lists and minion targets: a reused
// slot bumps its generation, so stale handles can never alias a new enemy.
type Handle struct {
	Index int32
	Gen   int32
}

// NoHandle is the zero-value "points at nothing" handle.
var NoHandle = Handle{Index: -1}

// Valid reports whether the handle could reference a slot at all.
func (h Handle) Valid() bool {
	return h.Index >= 0
}

// EnemyKind is the enemy archetype; the mix shifts with wave number.
type EnemyKind int

const (
	EnemyCrawler EnemyKind = iota
	EnemyRunner
	EnemyBrute
	EnemyBoss
)

// String returns the display name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyCrawler:
		return "Crawler"
	case EnemyRunner:
		return "Runner"
	case EnemyBrute:
		return "Brute"
	case EnemyBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// Status is the per-enemy elemental state bundle.
// Electrified mirrors whether either lightning timer is running.
type Status struct {
	Burning     bool
	BurnTimer   float64 // frames remaining
	Wet         bool
	WetTimer    float64
	Electrified bool
	LightATimer float64
	LightBTimer float64
}

// bossPhase drives the boss charge state machine.
type bossPhase int

const (
	bossRoam bossPhase = iota
	bossWindup
	bossCharge
)

// bossState is attached only to boss enemies.
type bossState struct {
	phase     bossPhase
	timer     float64 // frames until next phase transition
	chargeDir core.Vec2
}

// Enemy is a mutable simulation object owned by the tick loop.
type Enemy struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Knock  core.Vec2 // decaying knockback velocity, separate from steering
	Radius float64

	HP    float64
	MaxHP float64

	Kind          EnemyKind
	Speed         float64
	ContactDamage float64
	SpawnWave     int

	Status     Status
	FlashTimer float64 // hit flash, cosmetic

	boss *bossState
}

// enemySlot is one arena entry. gen survives across occupancy so freed
// handles stay stale forever.
type enemySlot struct {
	gen      int32
	occupied bool
	enemy    Enemy
}

// enemyArena issues generation-counted handles for enemies.
type enemyArena struct {
	slots []enemySlot
	free  []int32
	live  int
}

// Add inserts an enemy and returns its handle.
func (a *enemyArena) Add(e Enemy) Handle {
	var idx int32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, enemySlot{})
		idx = int32(len(a.slots) - 1)
	}

	slot := &a.slots[idx]
	slot.occupied = true
	slot.enemy = e
	a.live++
	return Handle{Index: idx, Gen: slot.gen}
}

// Get resolves a handle to its enemy, or nil if the handle is stale.
func (a *enemyArena) Get(h Handle) *Enemy {
	if h.Index < 0 || int(h.Index) >= len(a.slots) {
		return nil
	}
	slot := &a.slots[h.Index]
	if !slot.occupied || slot.gen != h.Gen {
		return nil
	}
	return &slot.enemy
}

// Remove frees the slot and bumps its generation so existing handles
// become stale. Removing a stale handle is a no-op.
func (a *enemyArena) Remove(h Handle) {
	e := a.Get(h)
	if e == nil {
		return
	}
	slot := &a.slots[h.Index]
	slot.occupied = false
	slot.gen++
	a.free = append(a.free, h.Index)
	a.live--
}

// Live returns the number of occupied slots.
func (a *enemyArena) Live() int {
	return a.live
}

// ForEach visits every live enemy. The callback may mutate the enemy but
// must not add or remove arena entries.
func (a *enemyArena) ForEach(fn func(Handle, *Enemy)) {
	for i := range a.slots {
		slot := &a.slots[i]
		if slot.occupied {
			fn(Handle{Index: int32(i), Gen: slot.gen}, &slot.enemy)
		}
	}
}
