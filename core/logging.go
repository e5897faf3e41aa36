package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxLogSize triggers rotation of an existing log file on startup
const MaxLogSize = 10 * 1024 * 1024

// SetupLogging silences the standard logger unless debug is set, in which case it appends to dir/name
// An oversized log is renamed with a timestamp suffix first; the caller closes the returned file
func SetupLogging(debug bool, dir, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		ext := filepath.Ext(name)
		rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(name, ext), time.Now().Format("20060102-150405"), ext)
		_ = os.Rename(path, filepath.Join(dir, rotated))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("logging started")
	return f
}
