package secrets

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled credential regex with its
// redaction replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// rawPattern is a builtin pattern before compilation.
type rawPattern struct {
	pattern     string
	replacement string
	description string
}

// builtinPatterns returns the credential shapes the detector refuses.
// Order matters: specific token formats come before generic key=value
// sweeps so Detect reports the most precise name.
func builtinPatterns() []struct {
	name string
	raw  rawPattern
} {
	return []struct {
		name string
		raw  rawPattern
	}{
		{"openai_key", rawPattern{
			pattern:     `\bsk-[A-Za-z0-9_\-]{20,}\b`,
			replacement: `__REDACTED_OPENAI_KEY__`,
			description: "OpenAI-style sk- keys",
		}},
		{"aws_access_key", rawPattern{
			pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			replacement: `__REDACTED_AWS_KEY__`,
			description: "AWS access key IDs",
		}},
		{"github_token", rawPattern{
			pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			replacement: `__REDACTED_GITHUB_TOKEN__`,
			description: "GitHub tokens",
		}},
		{"slack_token", rawPattern{
			pattern:     `(?i)\bxox[baprs]-[A-Za-z0-9-]{10,72}\b`,
			replacement: `__REDACTED_SLACK_TOKEN__`,
			description: "Slack tokens",
		}},
		{"jwt", rawPattern{
			pattern:     `\beyJ[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-]{10,}\.[A-Za-z0-9_\-]{5,}\b`,
			replacement: `__REDACTED_JWT__`,
			description: "JSON web tokens",
		}},
		{"pem_block", rawPattern{
			pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			replacement: `__REDACTED_PEM_BLOCK__`,
			description: "PEM-encoded keys and certificates",
		}},
		{"ssh_key", rawPattern{
			pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			replacement: `__REDACTED_SSH_KEY__`,
			description: "SSH public keys",
		}},
		{"bearer", rawPattern{
			pattern:     `(?i)(?:bearer|authorization)["']?\s*[:=]?\s*["']?[A-Za-z0-9_\-\.=]{16,}`,
			replacement: `__REDACTED_BEARER__`,
			description: "Bearer / authorization headers",
		}},
		{"api_key", rawPattern{
			pattern:     `(?i)(?:api[_-]?key|apikey|access[_-]?key|secret[_-]?key)["']?\s*[:=]\s*["']?[A-Za-z0-9_\-]{16,}["']?`,
			replacement: `__REDACTED_API_KEY__`,
			description: "API key assignments",
		}},
		{"token", rawPattern{
			pattern:     `(?i)(?:token|jwt)["']?\s*[:=]\s*["']?[A-Za-z0-9_\-\.]{20,}["']?`,
			replacement: `__REDACTED_TOKEN__`,
			description: "Access token assignments",
		}},
		{"password", rawPattern{
			pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?[^"'\s\n]{6,}["']?`,
			replacement: `__REDACTED_PASSWORD__`,
			description: "Password assignments",
		}},
	}
}

// compilePatterns compiles the builtin set. Invalid patterns are logged
// and skipped.
func compilePatterns() []*CompiledPattern {
	raw := builtinPatterns()
	compiled := make([]*CompiledPattern, 0, len(raw))
	for _, entry := range raw {
		re, err := regexp.Compile(entry.raw.pattern)
		if err != nil {
			slog.Error("Failed to compile secret pattern, skipping",
				"pattern", entry.name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        entry.name,
			Regex:       re,
			Replacement: entry.raw.replacement,
			Description: entry.raw.description,
		})
	}
	return compiled
}
