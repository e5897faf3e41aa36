package audio

import (
	"fmt"

	"github.com/gpbacay/Arcanus-Sphere/component"
	"github.com/gpbacay/Arcanus-Sphere/parameter"
)

// Range is a half-open bin interval [Start, End)
type Range struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

func (r Range) Len() int { return r.End - r.Start }

// BandRanges are the fixed spectrum sub-ranges averaged into bass, mid and treble
type BandRanges struct {
	Bass   Range `toml:"bass"`
	Mid    Range `toml:"mid"`
	Treble Range `toml:"treble"`
}

// DefaultBandRanges returns the tuned low/mid/high split for a 256-bin spectrum
func DefaultBandRanges() BandRanges {
	return BandRanges{
		Bass:   Range{parameter.BassStart, parameter.BassEnd},
		Mid:    Range{parameter.MidStart, parameter.MidEnd},
		Treble: Range{parameter.TrebleStart, parameter.TrebleEnd},
	}
}

// Validate checks ranges are non-empty, ascending, non-overlapping and inside a spectrum of size bins
func (b BandRanges) Validate(size int) error {
	ranges := [3]Range{b.Bass, b.Mid, b.Treble}
	names := [3]string{"bass", "mid", "treble"}

	prevEnd := 0
	for i, r := range ranges {
		if r.Start < 0 || r.Len() <= 0 {
			return fmt.Errorf("%w: %s [%d,%d) is empty", ErrInvalidBandRange, names[i], r.Start, r.End)
		}
		if r.Start < prevEnd {
			return fmt.Errorf("%w: %s overlaps previous band", ErrInvalidBandRange, names[i])
		}
		if r.End > size {
			return fmt.Errorf("%w: %s ends at %d beyond %d bins", ErrInvalidBandRange, names[i], r.End, size)
		}
		prevEnd = r.End
	}
	return nil
}

// ExtractBands averages each range of the spectrum and normalizes by 255
// Ranges not covered by the buffer contribute 0
func ExtractBands(spectrum []byte, b BandRanges) component.BandSample {
	return component.BandSample{
		Bass:   average(spectrum, b.Bass),
		Mid:    average(spectrum, b.Mid),
		Treble: average(spectrum, b.Treble),
	}.Clamped()
}

func average(spectrum []byte, r Range) float64 {
	if r.Len() <= 0 || r.Start < 0 || r.End > len(spectrum) {
		return 0
	}
	sum := 0
	for _, v := range spectrum[r.Start:r.End] {
		sum += int(v)
	}
	return float64(sum) / float64(r.Len()) / 255.0
}
