package sim

import (
	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
)

// Obstacle is a static impassable circle in the arena.
type Obstacle struct {
	Pos    core.Vec2
	Radius float64
}

// playerClearRadius keeps the world origin free of obstacles so a fresh
// run never starts inside a rock.
const playerClearRadius = 6.0

type chunkKey struct {
	X, Y int32
}

// terrain materializes obstacle chunks lazily around whoever asks.
// A chunk's layout is a pure function of (seed, cx, cy): it is generated
// at most once, cached forever, and revisiting always observes the
// identical obstacles.
type terrain struct {
	cfg    *config.TerrainConfig
	chunks map[chunkKey][]Obstacle
}

func newTerrain(cfg *config.TerrainConfig) *terrain {
	return &terrain{
		cfg:    cfg,
		chunks: make(map[chunkKey][]Obstacle),
	}
}

// keyFor maps a world position to its containing chunk.
func (t *terrain) keyFor(pos core.Vec2) chunkKey {
	size := t.cfg.ChunkSize
	return chunkKey{
		X: int32(floorDiv(pos.X, size)),
		Y: int32(floorDiv(pos.Y, size)),
	}
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// ensureAround generates the 3x3 chunk neighborhood of pos if any of it
// is missing.
func (t *terrain) ensureAround(pos core.Vec2) {
	center := t.keyFor(pos)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			key := chunkKey{X: center.X + dx, Y: center.Y + dy}
			if _, ok := t.chunks[key]; !ok {
				t.chunks[key] = t.generate(key)
			}
		}
	}
}

// forEachNear visits every obstacle in the 3x3 neighborhood of pos,
// generating chunks on demand.
func (t *terrain) forEachNear(pos core.Vec2, fn func(Obstacle)) {
	center := t.keyFor(pos)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			key := chunkKey{X: center.X + dx, Y: center.Y + dy}
			obs, ok := t.chunks[key]
			if !ok {
				obs = t.generate(key)
				t.chunks[key] = obs
			}
			for _, o := range obs {
				fn(o)
			}
		}
	}
}

// generate derives the chunk's obstacles from the chunk hash alone: no
// shared random state, so generation order never changes a layout.
func (t *terrain) generate(key chunkKey) []Obstacle {
	h := chunkHash(uint64(t.cfg.Seed), key.X, key.Y)
	next := func() float64 {
		h = splitmix(h)
		return float64(h>>11) / (1 << 53)
	}

	span := t.cfg.MaxObstacles - t.cfg.MinObstacles + 1
	n := t.cfg.MinObstacles + int(next()*float64(span))
	if n > t.cfg.MaxObstacles {
		n = t.cfg.MaxObstacles
	}

	size := t.cfg.ChunkSize
	originX := float64(key.X) * size
	originY := float64(key.Y) * size

	obstacles := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		o := Obstacle{
			Pos:    core.V(originX+next()*size, originY+next()*size),
			Radius: t.cfg.ObstacleMinRadius + next()*(t.cfg.ObstacleMaxRadius-t.cfg.ObstacleMinRadius),
		}
		// The roll is still consumed, so skipping never shifts later
		// obstacles in the same chunk.
		if o.Pos.Len() < playerClearRadius+o.Radius {
			continue
		}
		obstacles = append(obstacles, o)
	}
	return obstacles
}

// resolve pushes a circle out of any overlapping obstacle and returns the
// corrected position. One pass per obstacle; deep overlaps settle over a
// few ticks rather than teleporting.
func (t *terrain) resolve(pos core.Vec2, radius float64) core.Vec2 {
	t.forEachNear(pos, func(o Obstacle) {
		minDist := o.Radius + radius
		to := pos.Sub(o.Pos)
		d := to.Len()
		if d >= minDist {
			return
		}
		if d == 0 {
			pos = o.Pos.Add(core.V(minDist, 0))
			return
		}
		pos = o.Pos.Add(to.Scale(minDist / d))
	})
	return pos
}

// chunkHash mixes the world seed and chunk coordinates into a 64-bit
// stream seed.
func chunkHash(seed uint64, cx, cy int32) uint64 {
	h := seed
	h ^= uint64(uint32(cx)) * 0x9E3779B97F4A7C15
	h = splitmix(h)
	h ^= uint64(uint32(cy)) * 0xBF58476D1CE4E5B9
	return splitmix(h)
}

// splitmix is the SplitMix64 finalizer.
func splitmix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
