// Package config provides YAML-based simulation configuration loading and
// difficulty presets for cardstorm. Every gameplay constant the balance
// team may want to retune lives here rather than in engine code.
package config

// SimConfig contains all tunable parameters of the simulation.
type SimConfig struct {
	Engine      EngineConfig      `yaml:"engine"`
	Player      PlayerConfig      `yaml:"player"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Waves       WavesConfig       `yaml:"waves"`
	Effects     EffectsConfig     `yaml:"effects"`
	Elements    ElementsConfig    `yaml:"elements"`
	Projectiles ProjectilesConfig `yaml:"projectiles"`
	Pickups     PickupsConfig     `yaml:"pickups"`
	Terrain     TerrainConfig     `yaml:"terrain"`
}

// EngineConfig defines frame pacing and observation cadence.
// Timers throughout the config are expressed in frames at the reference
// tick rate; the simulation drains them by dt*reference_tick_rate so the
// outcome is independent of the real frame rate.
type EngineConfig struct {
	ReferenceTickRate   float64 `yaml:"reference_tick_rate"`
	MaxDeltaSeconds     float64 `yaml:"max_delta_seconds"`
	StatsIntervalFrames float64 `yaml:"stats_interval_frames"`
	PreLevelUpFrames    float64 `yaml:"pre_level_up_frames"`
	PreLevelUpTimeScale float64 `yaml:"pre_level_up_time_scale"`
}

// PlayerConfig defines the player aggregate's base stats.
type PlayerConfig struct {
	MaxHP            float64 `yaml:"max_hp"`
	Speed            float64 `yaml:"speed"` // world units per second
	Radius           float64 `yaml:"radius"`
	PickupRange      float64 `yaml:"pickup_range"`
	InvulnFrames     float64 `yaml:"invuln_frames"`
	ContactKnockback float64 `yaml:"contact_knockback"`
	KnockbackDecay   float64 `yaml:"knockback_decay"` // fraction lost per second
	BaseXPToLevel    float64 `yaml:"base_xp_to_level"`
	XPGrowth         float64 `yaml:"xp_growth"` // threshold multiplier per level
}

// EnemiesConfig defines per-kind enemy parameters and boss behavior.
type EnemiesConfig struct {
	BaseSpeed           float64 `yaml:"base_speed"`
	BaseRadius          float64 `yaml:"base_radius"`
	ContactDamage       float64 `yaml:"contact_damage"`
	ContactDamageGrowth float64 `yaml:"contact_damage_growth"` // added per wave
	XPBase              float64 `yaml:"xp_base"`
	KnockbackDecay      float64 `yaml:"knockback_decay"`
	HitFlashFrames      float64 `yaml:"hit_flash_frames"`

	// Runner/Brute multipliers relative to the crawler baseline.
	RunnerSpeedMult float64 `yaml:"runner_speed_mult"`
	RunnerHPMult    float64 `yaml:"runner_hp_mult"`
	BruteSpeedMult  float64 `yaml:"brute_speed_mult"`
	BruteHPMult     float64 `yaml:"brute_hp_mult"`
	BruteRadiusMult float64 `yaml:"brute_radius_mult"`

	// Boss charge behavior: windup, locked dash, recover.
	BossName                 string  `yaml:"boss_name"`
	BossSpeed                float64 `yaml:"boss_speed"`
	BossRadiusMult           float64 `yaml:"boss_radius_mult"`
	BossHPMult               float64 `yaml:"boss_hp_mult"`
	BossContactDamage        float64 `yaml:"boss_contact_damage"`
	BossChargeIntervalFrames float64 `yaml:"boss_charge_interval_frames"`
	BossWindupFrames         float64 `yaml:"boss_windup_frames"`
	BossChargeFrames         float64 `yaml:"boss_charge_frames"`
	BossChargeSpeed          float64 `yaml:"boss_charge_speed"`
}

// WavesConfig defines spawn quotas, scaling curves, and boss cadence.
// Flagged as tunable content rather than engine invariants.
type WavesConfig struct {
	BaseEnemies          int     `yaml:"base_enemies"`
	EnemiesPerWave       int     `yaml:"enemies_per_wave"`
	SpawnCap             int     `yaml:"spawn_cap"`
	SpawnIntervalFrames  float64 `yaml:"spawn_interval_frames"`
	InterWaveDelayFrames float64 `yaml:"inter_wave_delay_frames"`
	SpawnRadius          float64 `yaml:"spawn_radius"` // distance from player
	BossEvery            int     `yaml:"boss_every"`
	VictoryWave          int     `yaml:"victory_wave"`

	// Enemy HP = hp_base * (1 + hp_growth * wave^hp_exponent)
	HPBase     float64 `yaml:"hp_base"`
	HPGrowth   float64 `yaml:"hp_growth"`
	HPExponent float64 `yaml:"hp_exponent"`

	// Type mix: weight shift toward tougher archetypes as waves rise.
	RunnerWeightPerWave float64 `yaml:"runner_weight_per_wave"`
	BruteWeightPerWave  float64 `yaml:"brute_weight_per_wave"`
}

// EffectsConfig defines the logic-modifier numbers consumed by the
// inventory resolver and fire resolution.
type EffectsConfig struct {
	FanCount               int     `yaml:"fan_count"`
	FanSpreadDeg           float64 `yaml:"fan_spread_deg"`
	RingCount              int     `yaml:"ring_count"`
	DoubleCastCap          int     `yaml:"double_cast_cap"`
	MulticastStaggerFrames float64 `yaml:"multicast_stagger_frames"`
	GiantStep              float64 `yaml:"giant_step"` // damage/size added per stack

	ChainBaseHops  int `yaml:"chain_base_hops"`
	ChainFanBonus  int `yaml:"chain_fan_bonus"`
	ChainRingBonus int `yaml:"chain_ring_bonus"`
	ChainBackBonus int `yaml:"chain_back_bonus"`

	HomingTurnRate  float64 `yaml:"homing_turn_rate"` // radians per second
	WobbleAmplitude float64 `yaml:"wobble_amplitude"`
	WobbleFrequency float64 `yaml:"wobble_frequency"` // phase radians per second
}

// ElementsConfig defines elemental status numbers and interactions.
type ElementsConfig struct {
	BurnDPS              float64 `yaml:"burn_dps"`
	BurnWaveScaling      float64 `yaml:"burn_wave_scaling"` // extra fraction per wave
	BurnDurationFrames   float64 `yaml:"burn_duration_frames"`
	WetDurationFrames    float64 `yaml:"wet_duration_frames"`
	SteamBonus           float64 `yaml:"steam_bonus"` // damage multiplier, > 1
	WaterKnockback       float64 `yaml:"water_knockback"`
	WindKnockback        float64 `yaml:"wind_knockback"`
	LightningTimerFrames float64 `yaml:"lightning_timer_frames"`
	StormRadius          float64 `yaml:"storm_radius"`
	StormDamage          float64 `yaml:"storm_damage"`
}

// ProjectilesConfig defines archetype motion and lifetime parameters.
type ProjectilesConfig struct {
	BaseSpeed  float64 `yaml:"base_speed"` // units/s for straight shots
	BaseRange  float64 `yaml:"base_range"` // also the chain-lightning hop range
	BaseRadius float64 `yaml:"base_radius"`
	BasePierce int     `yaml:"base_pierce"`
	AreaPierce int     `yaml:"area_pierce"` // effectively unlimited

	OrbitRadius    float64 `yaml:"orbit_radius"`
	OrbitSpeed     float64 `yaml:"orbit_speed"` // radians per second
	HitResetFrames float64 `yaml:"hit_reset_frames"`

	MinionSearchRadius       float64 `yaml:"minion_search_radius"`
	MinionHoverRadius        float64 `yaml:"minion_hover_radius"`
	MinionDashSpeed          float64 `yaml:"minion_dash_speed"`
	MinionMeleeRange         float64 `yaml:"minion_melee_range"`
	MinionSlashRadius        float64 `yaml:"minion_slash_radius"`
	MinionSlashFrames        float64 `yaml:"minion_slash_frames"`
	MinionReacquireFrames    float64 `yaml:"minion_reacquire_frames"`
	GrowthScaleMax           float64 `yaml:"growth_scale_max"` // fire/wind end-of-life scale
	StreamLifetimeFrames     float64 `yaml:"stream_lifetime_frames"`
	AreaBurstLifetimeFrames  float64 `yaml:"area_burst_lifetime_frames"`
	StraightLifetimeFrames   float64 `yaml:"straight_lifetime_frames"`
}

// PickupsConfig defines XP orb tiers and magnet behavior.
type PickupsConfig struct {
	TierValues  []float64 `yaml:"tier_values"` // XP per tier, index 0-5
	MagnetSpeed float64   `yaml:"magnet_speed"`
	OrbRadius   float64   `yaml:"orb_radius"`
}

// TerrainConfig defines deterministic chunk generation.
type TerrainConfig struct {
	Seed              int64   `yaml:"seed"` // folded into the chunk hash
	ChunkSize         float64 `yaml:"chunk_size"`
	MinObstacles      int     `yaml:"min_obstacles"`
	MaxObstacles      int     `yaml:"max_obstacles"`
	ObstacleMinRadius float64 `yaml:"obstacle_min_radius"`
	ObstacleMaxRadius float64 `yaml:"obstacle_max_radius"`
}
