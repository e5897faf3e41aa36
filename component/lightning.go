package component

import "github.com/gpbacay/Arcanus-Sphere/vmath"

// Track names the two particles a bolt connects
type Track struct {
	StartIndex int
	StartLayer LayerID
	EndIndex   int
	EndLayer   LayerID
}

// Bolt is one slot of the fixed lightning pool
// Life <= 0 means inactive; Track is meaningless then
type Bolt struct {
	Life    int
	MaxLife int
	Track   Track

	// Depth is the chain depth of the tip the bolt grew from
	Depth int

	// Resolved world-space geometry, refreshed every active tick
	Start       vmath.Vec3F
	End         vmath.Vec3F
	Mid         vmath.Vec3F
	Dir         vmath.Vec3F
	Orientation vmath.Quat
	Length      float64

	Opacity float64
	Visible bool
}

// Active reports whether the slot holds a live bolt
func (b *Bolt) Active() bool {
	return b.Life > 0
}

// Deactivate returns the slot to the inactive state
func (b *Bolt) Deactivate() {
	*b = Bolt{}
}

// Tip is an open end of a growing arc chain
type Tip struct {
	Index             int
	Layer             LayerID
	RemainingBranches int
	ChainDepth        int

	// Seq orders tips by creation for oldest-first replacement
	Seq uint64
}
