package memwriter

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/titanous/json5"

	"github.com/conductorhq/conductor/pkg/models"
)

// keyPattern is the accepted key shape: snake_case, starting with a
// letter, at most 64 characters.
var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// decodeOps parses a raw model response into memory operations.
// Providers only guarantee JSON syntax at best, and JSON-only mode makes
// some models wrap the array in an object, so parsing is progressively
// looser: strict JSON, then json5, then the first balanced [...] block.
func decodeOps(raw string) ([]models.MemoryOp, error) {
	entries, err := decodeArray(raw)
	if err != nil {
		return nil, err
	}

	ops := make([]models.MemoryOp, 0, len(entries))
	for _, entry := range entries {
		if op, ok := normalizeOp(entry); ok {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func decodeArray(raw string) ([]map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	var entries []map[string]any
	if err := json.Unmarshal([]byte(raw), &entries); err == nil {
		return entries, nil
	}
	if err := json5.Unmarshal([]byte(raw), &entries); err == nil && entries != nil {
		return entries, nil
	}

	block, ok := extractBalancedArray(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	if err := json.Unmarshal([]byte(block), &entries); err == nil {
		return entries, nil
	}
	if err := json5.Unmarshal([]byte(block), &entries); err != nil || entries == nil {
		return nil, fmt.Errorf("response is not a JSON array of operations")
	}
	return entries, nil
}

// extractBalancedArray returns the first balanced [...] block, tracking
// strings and escapes so brackets inside values don't end the block
// early. This also digs the array out of an {"operations": [...]}
// wrapper object.
func extractBalancedArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// normalizeOp maps one raw entry to a MemoryOp, folding the field-name
// alternates models produce despite the prompt's exact shape. Returns
// false for entries with no recognizable verb.
func normalizeOp(entry map[string]any) (models.MemoryOp, bool) {
	var op models.MemoryOp

	op.Op = strings.ToLower(stringField(entry, "op", "action", "type", "intent", "operation"))
	if op.Op == "" {
		return op, false
	}
	// "remove" and "archive" show up as delete synonyms; "refresh" as touch.
	switch op.Op {
	case "remove", "archive":
		op.Op = models.MemoryOpDelete
	case "refresh", "confirm":
		op.Op = models.MemoryOpTouch
	}

	op.ID = stringField(entry, "id")
	op.Module = strings.ToLower(stringField(entry, "module", "category"))
	op.Key = normalizeKey(stringField(entry, "key", "memory_key", "name"))
	op.Value = strings.TrimSpace(stringField(entry, "value", "new_value", "newValue", "content", "text"))

	if level, ok := numberField(entry, "level"); ok {
		l := int(level)
		if l < 0 {
			l = 0
		}
		if l > 5 {
			l = 5
		}
		op.Level = &l
	}
	if confidence, ok := numberField(entry, "confidence"); ok {
		if confidence > 0 && confidence <= 1 {
			op.Confidence = &confidence
		}
	}
	if pin, ok := entry["pin"].(bool); ok {
		op.Pin = pin
	}
	return op, true
}

// normalizeKey lowercases and snake-cases a key so "Preferred Language"
// and "preferred-language" land on the same memory.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// rejectOp returns a non-empty reason when an operation must not be
// applied: unknown verb or module, malformed key, or a missing value on
// a write.
func rejectOp(op models.MemoryOp) string {
	switch op.Op {
	case models.MemoryOpAdd, models.MemoryOpUpdate, models.MemoryOpDelete, models.MemoryOpTouch:
	default:
		return "unknown_op"
	}
	if !models.MemoryModules[op.Module] {
		return "unknown_module"
	}
	if !keyPattern.MatchString(op.Key) {
		return "invalid_key"
	}
	if (op.Op == models.MemoryOpAdd || op.Op == models.MemoryOpUpdate) && op.Value == "" {
		return "missing_value"
	}
	return ""
}

// stringField returns the first present string among the given keys.
func stringField(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// numberField reads a numeric field, tolerating string-encoded numbers.
func numberField(entry map[string]any, key string) (float64, bool) {
	switch v := entry[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%g", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}
