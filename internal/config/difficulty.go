package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a DifficultyPreset.
// Unknown values return the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// ApplySimPreset modifies the config based on a difficulty preset.
// "fixed" freezes wave scaling entirely; the other presets shift starting
// survivability and the steepness of the wave curves.
func ApplySimPreset(cfg *SimConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 130
		cfg.Waves.HPGrowth = 0.10
		cfg.Waves.EnemiesPerWave = 1
		cfg.Enemies.ContactDamageGrowth = 0.3
	case DifficultyHard:
		cfg.Player.MaxHP = 80
		cfg.Waves.HPGrowth = 0.22
		cfg.Waves.EnemiesPerWave = 3
		cfg.Enemies.ContactDamageGrowth = 0.8
	case DifficultyFixed:
		cfg.Waves.HPGrowth = 0
		cfg.Waves.EnemiesPerWave = 0
		cfg.Enemies.ContactDamageGrowth = 0
	}
}
