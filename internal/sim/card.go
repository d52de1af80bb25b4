package sim

import "github.com/vovakirdan/cardstorm/internal/core"

// CardID uniquely identifies a card instance in the inventory.
// Catalog entries receive a fresh ID when granted.
type CardID uint64

// CardKind discriminates the four card families.
type CardKind int

const (
	KindStat     CardKind = iota // permanent player stat modifier, applied at grant
	KindArtifact                 // a weapon; occupies an inventory slot
	KindBuff                     // transient multipliers consumed by the next artifact
	KindEffect                   // logic modifier applied to subsequent cards
)

// String returns a short name for the card kind.
func (k CardKind) String() string {
	switch k {
	case KindStat:
		return "Stat"
	case KindArtifact:
		return "Artifact"
	case KindBuff:
		return "Buff"
	case KindEffect:
		return "Effect"
	default:
		return "Unknown"
	}
}

// Rarity weights card selection in the catalog. Cosmetic to the engine.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

// String returns the display name of the rarity.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// Element is a projectile's damage element, driving status interactions.
type Element int

const (
	ElemPhysical Element = iota
	ElemFire
	ElemWind
	ElemWater
	ElemLightningA
	ElemLightningB
)

// String returns the display name of the element.
func (e Element) String() string {
	switch e {
	case ElemPhysical:
		return "Physical"
	case ElemFire:
		return "Fire"
	case ElemWind:
		return "Wind"
	case ElemWater:
		return "Water"
	case ElemLightningA:
		return "Lightning-A"
	case ElemLightningB:
		return "Lightning-B"
	default:
		return "Unknown"
	}
}

// Archetype is the behavioral category of a weapon.
type Archetype int

const (
	ArchStraight Archetype = iota
	ArchOrbiter
	ArchSeekMinion
	ArchAreaBurst
	ArchChainLightning
	ArchGroundStream
	ArchScreenPull
)

// String returns the display name of the archetype.
func (a Archetype) String() string {
	switch a {
	case ArchStraight:
		return "Straight"
	case ArchOrbiter:
		return "Orbiter"
	case ArchSeekMinion:
		return "Seek Minion"
	case ArchAreaBurst:
		return "Area Burst"
	case ArchChainLightning:
		return "Chain Lightning"
	case ArchGroundStream:
		return "Ground Stream"
	case ArchScreenPull:
		return "Screen Pull"
	default:
		return "Unknown"
	}
}

// persistent reports whether the archetype maintains live instances
// instead of firing on a cooldown.
func (a Archetype) persistent() bool {
	return a == ArchOrbiter || a == ArchSeekMinion
}

// LogicTag identifies an Effect card's modifier.
type LogicTag int

const (
	LogicDoubleCast LogicTag = iota
	LogicFan
	LogicRing
	LogicBackShot
	LogicHoming
	LogicWobble
	LogicGiant
)

// String returns the display name of the logic tag.
func (l LogicTag) String() string {
	switch l {
	case LogicDoubleCast:
		return "Double Cast"
	case LogicFan:
		return "Fan"
	case LogicRing:
		return "Ring"
	case LogicBackShot:
		return "Back Shot"
	case LogicHoming:
		return "Homing"
	case LogicWobble:
		return "Wobble"
	case LogicGiant:
		return "Giant"
	default:
		return "Unknown"
	}
}

// StatPayload holds permanent percentage modifiers applied once, at
// grant. Stat cards never enter the inventory sequence; the sweep still
// skips the kind defensively if one shows up.
type StatPayload struct {
	MaxHPPct        float64
	DamagePct       float64
	PickupRadiusPct float64
}

// ArtifactPayload holds a weapon card's catalog values.
type ArtifactPayload struct {
	CooldownFrames float64
	BaseDamage     float64
	Element        Element
	Archetype      Archetype
	Color          core.Color
}

// BuffPayload holds additive percentage deltas consumed by the next
// artifact in the sweep and reset afterwards.
type BuffPayload struct {
	RangePct     float64
	SpeedPct     float64
	FrequencyPct float64
}

// EffectPayload holds a logic modifier and the number of subsequent
// inventory entries it applies to.
type EffectPayload struct {
	Logic     LogicTag
	Influence int
}

// Card is an immutable catalog entry instantiated with a fresh ID when
// granted. Exactly one payload matches Kind; the others are nil.
type Card struct {
	ID     CardID
	Kind   CardKind
	Name   string
	Rarity Rarity

	Stat     *StatPayload
	Artifact *ArtifactPayload
	Buff     *BuffPayload
	Effect   *EffectPayload
}
