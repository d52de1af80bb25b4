package config

import (
	_ "embed"
)

//go:embed defaults/sim.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the hardcoded default simulation configuration.
// Kept in sync with defaults/sim.yaml; used as the last-resort fallback if
// the embedded YAML fails to parse.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Engine: EngineConfig{
			ReferenceTickRate:   60,
			MaxDeltaSeconds:     0.25,
			StatsIntervalFrames: 15,
			PreLevelUpFrames:    45,
			PreLevelUpTimeScale: 0.25,
		},
		Player: PlayerConfig{
			MaxHP:            100,
			Speed:            14,
			Radius:           0.8,
			PickupRange:      6,
			InvulnFrames:     60,
			ContactKnockback: 10,
			KnockbackDecay:   6,
			BaseXPToLevel:    20,
			XPGrowth:         1.35,
		},
		Enemies: EnemiesConfig{
			BaseSpeed:           6,
			BaseRadius:          0.8,
			ContactDamage:       8,
			ContactDamageGrowth: 0.5,
			XPBase:              2,
			KnockbackDecay:      8,
			HitFlashFrames:      6,

			RunnerSpeedMult: 1.7,
			RunnerHPMult:    0.6,
			BruteSpeedMult:  0.6,
			BruteHPMult:     2.5,
			BruteRadiusMult: 1.5,

			BossName:                 "Cinder Tyrant",
			BossSpeed:                4,
			BossRadiusMult:           3,
			BossHPMult:               25,
			BossContactDamage:        25,
			BossChargeIntervalFrames: 240,
			BossWindupFrames:         45,
			BossChargeFrames:         40,
			BossChargeSpeed:          30,
		},
		Waves: WavesConfig{
			BaseEnemies:          6,
			EnemiesPerWave:       2,
			SpawnCap:             60,
			SpawnIntervalFrames:  30,
			InterWaveDelayFrames: 180,
			SpawnRadius:          45,
			BossEvery:            5,
			VictoryWave:          20,

			HPBase:     10,
			HPGrowth:   0.15,
			HPExponent: 1.2,

			RunnerWeightPerWave: 0.04,
			BruteWeightPerWave:  0.03,
		},
		Effects: EffectsConfig{
			FanCount:               5,
			FanSpreadDeg:           60,
			RingCount:              12,
			DoubleCastCap:          4,
			MulticastStaggerFrames: 6,
			GiantStep:              0.5,

			ChainBaseHops:  3,
			ChainFanBonus:  2,
			ChainRingBonus: 2,
			ChainBackBonus: 1,

			HomingTurnRate:  4,
			WobbleAmplitude: 2,
			WobbleFrequency: 10,
		},
		Elements: ElementsConfig{
			BurnDPS:              2,
			BurnWaveScaling:      0.1,
			BurnDurationFrames:   180,
			WetDurationFrames:    240,
			SteamBonus:           1.5,
			WaterKnockback:       14,
			WindKnockback:        22,
			LightningTimerFrames: 150,
			StormRadius:          9,
			StormDamage:          25,
		},
		Projectiles: ProjectilesConfig{
			BaseSpeed:  30,
			BaseRange:  18,
			BaseRadius: 0.6,
			BasePierce: 1,
			AreaPierce: 999,

			OrbitRadius:    5,
			OrbitSpeed:     3.5,
			HitResetFrames: 30,

			MinionSearchRadius:      20,
			MinionHoverRadius:       3,
			MinionDashSpeed:         26,
			MinionMeleeRange:        1.5,
			MinionSlashRadius:       3,
			MinionSlashFrames:       45,
			MinionReacquireFrames:   30,
			GrowthScaleMax:          2.5,
			StreamLifetimeFrames:    90,
			AreaBurstLifetimeFrames: 40,
			StraightLifetimeFrames:  90,
		},
		Pickups: PickupsConfig{
			TierValues:  []float64{1, 2, 4, 8, 16, 32},
			MagnetSpeed: 35,
			OrbRadius:   0.4,
		},
		Terrain: TerrainConfig{
			Seed:              1,
			ChunkSize:         32,
			MinObstacles:      1,
			MaxObstacles:      5,
			ObstacleMinRadius: 1,
			ObstacleMaxRadius: 3,
		},
	}
}
