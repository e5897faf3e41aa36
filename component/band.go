package component

import "github.com/gpbacay/Arcanus-Sphere/vmath"

// BandSample holds the three normalized control signals derived from one spectrum snapshot
type BandSample struct {
	Bass   float64
	Mid    float64
	Treble float64
}

// Clamped returns the sample with every band limited to [0, 1]
func (b BandSample) Clamped() BandSample {
	return BandSample{
		Bass:   vmath.Clamp01(b.Bass),
		Mid:    vmath.Clamp01(b.Mid),
		Treble: vmath.Clamp01(b.Treble),
	}
}

// VocalIntensity is mid + treble*w; bass is excluded so percussive energy does not gate lightning
func (b BandSample) VocalIntensity(trebleWeight float64) float64 {
	return b.Mid + b.Treble*trebleWeight
}
