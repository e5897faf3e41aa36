package audio

// SpectrumSource fills a caller-owned buffer with the latest frequency magnitudes (0..255 per bin)
// A nil SpectrumSource is valid and means silence
type SpectrumSource interface {
	ByteFrequencyData(dst []byte)
}

// SourceFunc adapts a plain function to SpectrumSource
type SourceFunc func(dst []byte)

func (f SourceFunc) ByteFrequencyData(dst []byte) { f(dst) }
