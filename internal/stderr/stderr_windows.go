//go:build windows

package stderr

import "os"

// Start does nothing on Windows; the console is left as it is.
func Start() error {
	return nil
}

// WriteOriginal writes msg to os.Stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing on Windows.
func Stop() {}
