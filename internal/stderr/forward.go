package stderr

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

// forward logs every non-empty line read from r until it is closed.
func forward(r io.Reader, log *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			log.Warn("captured stderr", "line", line)
		}
	}
}
