package parameter

// Lightning Pool
const (
	// BoltCapacity is the fixed number of bolt slots
	BoltCapacity = 40

	// MaxTips bounds the open chain ends; the oldest tip is replaced when full
	MaxTips = 96
)

// Lightning Gating
const (
	// VocalTrebleWeight (w) in vocal = mid + treble*w
	VocalTrebleWeight = 0.6

	// ActivationThreshold is the vocal intensity below which the automaton is quiescent
	ActivationThreshold = 0.12

	// ConnectionGain maps vocal intensity to requested concurrent bolts
	ConnectionGain = 60.0
)

// Lightning Lifetime (ticks)
const (
	BoltLifeMin = 10
	BoltLifeMax = 40

	// BoltDecay is the normal per-tick life decrement
	BoltDecay = 1

	// BoltForcedDecay is the per-tick decrement while quiescent
	BoltForcedDecay = 4

	// BoltMaxOpacity is the opacity of a freshly spawned bolt
	BoltMaxOpacity = 0.9

	// BoltFadeExponent shapes opacity = (life/maxLife)^exp * max
	BoltFadeExponent = 1.5
)

// Chain Propagation
const (
	// MaxChainDepth bounds hops from a root tip
	MaxChainDepth = 4

	// RootSpawnChance is the probability of seeding a core root when no tip exists
	RootSpawnChance = 0.3

	// RootBranchesMax is the upper bound of the 1..N branch allowance of a root tip
	RootBranchesMax = 3

	// BranchChanceBase / BranchChanceBassGain give P(two child branches) = base + gain*bass
	BranchChanceBase     = 0.15
	BranchChanceBassGain = 0.7

	// MiddleEndBias is the probability a bolt ends on the middle shell rather than the inner one
	MiddleEndBias = 0.65
)
