package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	cleanupMu sync.Mutex
	cleanup   []func()

	// crashOut and exit are replaced in tests
	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// OnCrash registers fn to run before the stack trace is printed, typically screen teardown
// Hooks run in reverse registration order
func OnCrash(fn func()) {
	cleanupMu.Lock()
	cleanup = append(cleanup, fn)
	cleanupMu.Unlock()
}

// HandleCrash runs cleanup hooks, prints the panic value and stack trace, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	hooks := cleanup
	cleanup = nil
	cleanupMu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		runHook(hooks[i])
	}

	os.Stdout.Sync()
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// runHook isolates a failing hook so the trace is still printed
func runHook(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
