package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/cardstorm/internal/config"
	"github.com/vovakirdan/cardstorm/internal/core"
)

func testTerrainConfig(seed int64) config.TerrainConfig {
	cfg := config.DefaultSimConfig()
	cfg.Terrain.Seed = seed
	return cfg.Terrain
}

func TestChunkGenerationIsPure(t *testing.T) {
	cfgA := testTerrainConfig(42)
	cfgB := testTerrainConfig(42)
	a := newTerrain(&cfgA)
	b := newTerrain(&cfgB)

	for _, key := range []chunkKey{{0, 0}, {1, 0}, {-3, 7}, {100, -100}} {
		if !reflect.DeepEqual(a.generate(key), b.generate(key)) {
			t.Fatalf("chunk %v differs across terrains with the same seed", key)
		}
	}
}

func TestChunkLayoutIndependentOfVisitOrder(t *testing.T) {
	cfgA := testTerrainConfig(7)
	cfgB := testTerrainConfig(7)
	a := newTerrain(&cfgA)
	b := newTerrain(&cfgB)

	// Visit in opposite orders; cached layouts must agree anyway.
	a.ensureAround(core.V(0, 0))
	a.ensureAround(core.V(500, 500))
	b.ensureAround(core.V(500, 500))
	b.ensureAround(core.V(0, 0))

	for key, obs := range a.chunks {
		if !reflect.DeepEqual(obs, b.chunks[key]) {
			t.Fatalf("chunk %v depends on generation order", key)
		}
	}
}

func TestRevisitedChunkIsIdentical(t *testing.T) {
	cfg := testTerrainConfig(3)
	tr := newTerrain(&cfg)

	tr.ensureAround(core.V(0, 0))
	key := chunkKey{0, 0}
	first := append([]Obstacle(nil), tr.chunks[key]...)

	// Wander far enough that the home chunk is out of the active window,
	// then come back.
	tr.ensureAround(core.V(10*cfg.ChunkSize, 0))
	tr.ensureAround(core.V(0, 0))

	if !reflect.DeepEqual(first, tr.chunks[key]) {
		t.Fatalf("revisited chunk changed layout")
	}
}

func TestSeedChangesLayout(t *testing.T) {
	cfgA := testTerrainConfig(1)
	cfgB := testTerrainConfig(2)
	a := newTerrain(&cfgA)
	b := newTerrain(&cfgB)

	same := true
	for _, key := range []chunkKey{{0, 0}, {1, 1}, {2, -2}, {5, 9}} {
		if !reflect.DeepEqual(a.generate(key), b.generate(key)) {
			same = false
		}
	}
	if same {
		t.Fatalf("different seeds produced identical terrain")
	}
}

func TestObstacleCountWithinBounds(t *testing.T) {
	cfg := testTerrainConfig(11)
	tr := newTerrain(&cfg)

	for x := int32(-5); x <= 5; x++ {
		for y := int32(-5); y <= 5; y++ {
			obs := tr.generate(chunkKey{x, y})
			// The origin clear zone may drop rolls below the minimum.
			if len(obs) > cfg.MaxObstacles {
				t.Fatalf("chunk (%d,%d) has %d obstacles, max %d", x, y, len(obs), cfg.MaxObstacles)
			}
			for _, o := range obs {
				if o.Radius < cfg.ObstacleMinRadius || o.Radius > cfg.ObstacleMaxRadius {
					t.Fatalf("obstacle radius %v out of [%v,%v]", o.Radius, cfg.ObstacleMinRadius, cfg.ObstacleMaxRadius)
				}
			}
		}
	}
}

func TestOriginStaysClear(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testTerrainConfig(seed)
		tr := newTerrain(&cfg)
		tr.ensureAround(core.V(0, 0))
		tr.forEachNear(core.V(0, 0), func(o Obstacle) {
			if o.Pos.Len() < playerClearRadius+o.Radius {
				t.Fatalf("seed %d: obstacle at %v (r=%v) intrudes on the spawn zone", seed, o.Pos, o.Radius)
			}
		})
	}
}

func TestResolvePushesCircleOut(t *testing.T) {
	cfg := testTerrainConfig(1)
	tr := newTerrain(&cfg)
	tr.chunks[chunkKey{0, 0}] = []Obstacle{{Pos: core.V(10, 10), Radius: 3}}
	// Pre-fill the neighborhood so only the hand-placed rock exists.
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			key := chunkKey{dx, dy}
			if _, ok := tr.chunks[key]; !ok {
				tr.chunks[key] = nil
			}
		}
	}

	pos := tr.resolve(core.V(11, 10), 1)
	if d := pos.Sub(core.V(10, 10)).Len(); d < 4-1e-9 {
		t.Fatalf("resolved distance = %v, want >= 4", d)
	}

	// A clear position is untouched.
	clear := core.V(30, 30)
	if got := tr.resolve(clear, 1); got != clear {
		t.Fatalf("clear position moved: %v", got)
	}
}
