package audio

import (
	"errors"
)

// FormatType identifies a decodable container
type FormatType int

const (
	FormatWAV FormatType = iota
	FormatMP3
	FormatFLAC
	FormatOgg
)

// Sentinel errors
var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoStream          = errors.New("no audio stream loaded")
	ErrNotSeekable       = errors.New("audio stream is not seekable")
	ErrNotInitialized    = errors.New("audio output not initialized")
	ErrInvalidBandRange  = errors.New("invalid band range")
)
