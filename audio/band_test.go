package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gpbacay/Arcanus-Sphere/parameter"
)

func filled(v byte) []byte {
	buf := make([]byte, parameter.SpectrumSize)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

// TestExtractBandsSilence verifies an all-zero spectrum yields zero bands
func TestExtractBandsSilence(t *testing.T) {
	b := ExtractBands(filled(0), DefaultBandRanges())
	if b.Bass != 0 || b.Mid != 0 || b.Treble != 0 {
		t.Errorf("Expected all zero bands, got %+v", b)
	}
}

// TestExtractBandsSaturation verifies a full-scale spectrum yields exactly 1.0 per band
func TestExtractBandsSaturation(t *testing.T) {
	b := ExtractBands(filled(255), DefaultBandRanges())
	if b.Bass != 1.0 || b.Mid != 1.0 || b.Treble != 1.0 {
		t.Errorf("Expected all bands 1.0, got %+v", b)
	}
}

// TestExtractBandsBassOnly verifies energy in bins 0..9 only affects bass
func TestExtractBandsBassOnly(t *testing.T) {
	buf := filled(0)
	for i := 0; i < 10; i++ {
		buf[i] = 200
	}
	b := ExtractBands(buf, DefaultBandRanges())

	want := 200.0 / 255.0
	if math.Abs(b.Bass-want) > 1e-12 {
		t.Errorf("Expected bass %f, got %f", want, b.Bass)
	}
	if b.Mid != 0 || b.Treble != 0 {
		t.Errorf("Expected mid and treble 0, got mid=%f treble=%f", b.Mid, b.Treble)
	}
}

// TestExtractBandsAverages verifies each band is the arithmetic mean of its range
func TestExtractBandsAverages(t *testing.T) {
	buf := filled(0)
	// Half the mid range at 255
	for i := 10; i < 45; i++ {
		buf[i] = 255
	}
	// Treble bins outside [80,200) must be ignored
	for i := 200; i < len(buf); i++ {
		buf[i] = 255
	}
	b := ExtractBands(buf, DefaultBandRanges())

	if math.Abs(b.Mid-0.5) > 1e-12 {
		t.Errorf("Expected mid 0.5, got %f", b.Mid)
	}
	if b.Treble != 0 {
		t.Errorf("Expected treble 0 with energy above range, got %f", b.Treble)
	}
}

// TestExtractBandsShortBuffer verifies missing or short spectra treat uncovered bands as zero
func TestExtractBandsShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		bass float64
	}{
		{"nil", nil, 0},
		{"empty", []byte{}, 0},
		{"bass only", filled(255)[:20], 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ExtractBands(tt.buf, DefaultBandRanges())
			if b.Bass != tt.bass {
				t.Errorf("Expected bass %f, got %f", tt.bass, b.Bass)
			}
			if b.Mid != 0 || b.Treble != 0 {
				t.Errorf("Expected uncovered bands 0, got %+v", b)
			}
		})
	}
}

// TestBandRangesValidate checks range validation
func TestBandRangesValidate(t *testing.T) {
	if err := DefaultBandRanges().Validate(parameter.SpectrumSize); err != nil {
		t.Fatalf("Expected default ranges valid, got %v", err)
	}

	tests := []struct {
		name   string
		ranges BandRanges
	}{
		{"empty bass", BandRanges{Range{0, 0}, Range{10, 80}, Range{80, 200}}},
		{"overlap", BandRanges{Range{0, 20}, Range{10, 80}, Range{80, 200}}},
		{"beyond size", BandRanges{Range{0, 10}, Range{10, 80}, Range{80, 300}}},
		{"negative", BandRanges{Range{-1, 10}, Range{10, 80}, Range{80, 200}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ranges.Validate(parameter.SpectrumSize)
			if !errors.Is(err, ErrInvalidBandRange) {
				t.Errorf("Expected ErrInvalidBandRange, got %v", err)
			}
		})
	}
}

// TestSourceFunc verifies the function adapter fills the buffer
func TestSourceFunc(t *testing.T) {
	var src SpectrumSource = SourceFunc(func(dst []byte) {
		for i := range dst {
			dst[i] = 7
		}
	})
	buf := make([]byte, 4)
	src.ByteFrequencyData(buf)
	for i, v := range buf {
		if v != 7 {
			t.Errorf("Expected buf[%d]=7, got %d", i, v)
		}
	}
}
