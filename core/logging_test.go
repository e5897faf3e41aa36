package core

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if f := SetupLogging(false, t.TempDir(), "test.log"); f != nil {
		t.Error("Expected nil log file when debug=false")
		f.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	dir := filepath.Join(t.TempDir(), "logs")

	f := SetupLogging(true, dir, "test.log")
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}

	log.Println("Test log message")
	info, err := os.Stat(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")

	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	f := SetupLogging(true, dir, "test.log")
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, e := range entries {
		if e.Name() != "test.log" && filepath.Ext(e.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("Expected new log file smaller than %d bytes, got %d", MaxLogSize, info.Size())
	}
}
