package cex

import (
	"log/slog"
	"strings"
)

const (
	markerPrefix  = "#!"
	commentPrefix = "//"
)

// Option configures a Store produced by Parse.
type Option func(*Store)

// WithLogger routes diagnostics about malformed blocks to log.
// Without it the store discards them.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Parse splits text into labeled blocks. It never fails: text without any
// marker line yields an empty store. Each call returns a new Store.
func Parse(text string, opts ...Option) *Store {
	s := newStore(opts...)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var (
		label string // empty while no block is open
		lines []string
	)
	flush := func() {
		if label != "" && len(lines) > 0 {
			s.add(label, strings.Join(lines, "\n"))
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if skipLine(trimmed) {
			continue
		}
		if strings.HasPrefix(trimmed, markerPrefix) {
			flush()
			label = strings.TrimSpace(trimmed[len(markerPrefix):])
			lines = nil
			continue
		}
		if label != "" {
			lines = append(lines, line)
		}
	}
	flush()

	return s
}

// skipLine reports whether a trimmed line is blank or a comment.
func skipLine(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, commentPrefix)
}

// contentLines splits a body into trimmed lines, dropping blanks and comments.
func contentLines(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if skipLine(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
