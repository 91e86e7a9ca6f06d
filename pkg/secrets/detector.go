// Package secrets detects credential-shaped values so they are never
// persisted to long-term memory or logged in the clear.
package secrets

import "log/slog"

// Detector matches values against a fixed set of credential patterns.
// Created once at application startup. Thread-safe and stateless aside
// from compiled patterns.
type Detector struct {
	patterns []*CompiledPattern
}

// NewDetector creates a detector with all builtin patterns compiled
// eagerly. Invalid patterns are logged and skipped.
func NewDetector() *Detector {
	d := &Detector{patterns: compilePatterns()}
	slog.Debug("Secret detector initialized", "patterns", len(d.patterns))
	return d
}

// Detect reports whether the value contains a credential-shaped substring
// and the name of the first matching pattern.
func (d *Detector) Detect(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	for _, p := range d.patterns {
		if p.Regex.MatchString(value) {
			return p.Name, true
		}
	}
	return "", false
}

// Redact replaces every credential-shaped substring with its pattern
// marker so the remainder is safe to persist or log.
func (d *Detector) Redact(value string) string {
	if value == "" {
		return value
	}
	redacted := value
	for _, p := range d.patterns {
		redacted = p.Regex.ReplaceAllString(redacted, p.Replacement)
	}
	return redacted
}
