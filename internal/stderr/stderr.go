//go:build !windows

// Package stderr captures output written directly to file descriptor 2
// while the TUI owns the terminal, and forwards it to the log. Anything
// written to the raw descriptor would otherwise corrupt the board.
package stderr

import (
	"os"
	"syscall"

	"github.com/llehouerou/reorder/internal/logger"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output.
// Returns an error if capture cannot be set up; the program can continue
// without it.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go func() {
		defer close(done)
		forward(pipeRead, logger.Component("stderr"))
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	if started && origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for captured output to be
// logged.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// closing the write end ends the forwarding loop
	pipeWrite.Close()
	<-done
	pipeRead.Close()
	started = false
}
