package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
)

const memorySearchSchema = `{
	"type": "object",
	"properties": {
		"query": {"type": "string", "minLength": 1},
		"limit": {"type": "integer", "minimum": 1, "maximum": 20}
	},
	"required": ["query"],
	"additionalProperties": false
}`

const memoryListSchema = `{
	"type": "object",
	"properties": {
		"module": {"type": "string", "enum": ["identity", "preferences", "constraints", "projects", "relationships", "environment", "recent_context"]},
		"level": {"type": "integer", "minimum": 0, "maximum": 5},
		"limit": {"type": "integer", "minimum": 1, "maximum": 50}
	},
	"additionalProperties": false
}`

const clockNowSchema = `{
	"type": "object",
	"properties": {
		"timezone": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`

// MemoryTool exposes the caller's stored memories.
func MemoryTool() Tool {
	return Tool{
		Name:             "memory",
		ShortDescription: "Search and list the user's stored memories",
		LongDescription:  "Read access to durable facts previously distilled about the user. Use search for keyword lookups, list to browse by module or level.",
		Pinned:           true,
		Commands: []Command{
			{
				Name:        "search",
				Description: "Full-text search over the user's memories",
				ArgsSchema:  memorySearchSchema,
				Handler:     memorySearch,
			},
			{
				Name:        "list",
				Description: "List the user's memories, optionally filtered by module or level",
				ArgsSchema:  memoryListSchema,
				Handler:     memoryList,
			},
		},
	}
}

// ClockTool tells the current time.
func ClockTool() Tool {
	return Tool{
		Name:             "clock",
		ShortDescription: "Current date and time",
		LongDescription:  "Returns the current time, optionally in a named IANA timezone.",
		Pinned:           true,
		Commands: []Command{
			{
				Name:        "now",
				Description: "Current time, optionally in an IANA timezone such as Europe/Berlin",
				ArgsSchema:  clockNowSchema,
				Handler:     clockNow,
			},
		},
	}
}

// Builtins returns every built-in tool for registration at startup.
func Builtins() []Tool {
	return []Tool{MemoryTool(), ClockTool()}
}

func memorySearch(ctx context.Context, tc ToolContext, args map[string]any) (Result, error) {
	if tc.Store == nil {
		return Result{Success: false, Error: "memory store is not available"}, nil
	}
	if tc.UserID == "" {
		return Result{Success: false, Error: "no user is associated with this run"}, nil
	}

	query, _ := args["query"].(string)
	limit := intArg(args, "limit", 10)

	items, err := tc.Store.Search(ctx, tc.UserID, query, limit)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("memory search failed: %s", err)}, nil
	}
	return Result{Success: true, Result: renderMemories(items)}, nil
}

func memoryList(ctx context.Context, tc ToolContext, args map[string]any) (Result, error) {
	if tc.Store == nil {
		return Result{Success: false, Error: "memory store is not available"}, nil
	}
	if tc.UserID == "" {
		return Result{Success: false, Error: "no user is associated with this run"}, nil
	}

	items, err := tc.Store.ListActive(ctx, tc.UserID)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("memory list failed: %s", err)}, nil
	}

	module, _ := args["module"].(string)
	level, hasLevel := numArg(args, "level")
	limit := intArg(args, "limit", 25)

	filtered := make([]*ent.MemoryItem, 0, len(items))
	for _, item := range items {
		if module != "" && string(item.Module) != module {
			continue
		}
		if hasLevel && item.Level != level {
			continue
		}
		filtered = append(filtered, item)
		if len(filtered) >= limit {
			break
		}
	}
	return Result{Success: true, Result: renderMemories(filtered)}, nil
}

func clockNow(ctx context.Context, tc ToolContext, args map[string]any) (Result, error) {
	loc := time.UTC
	if tz, ok := args["timezone"].(string); ok && tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return Result{Success: false, Error: fmt.Sprintf("unknown timezone %q", tz)}, nil
		}
		loc = parsed
	}

	now := time.Now().In(loc)
	return Result{Success: true, Result: map[string]any{
		"now":      now.Format(time.RFC3339),
		"timezone": loc.String(),
		"weekday":  now.Weekday().String(),
	}}, nil
}

func renderMemories(items []*ent.MemoryItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"module":     string(item.Module),
			"key":        item.Key,
			"value":      item.Value,
			"level":      item.Level,
			"confidence": item.Confidence,
			"lastSeenAt": item.LastSeenAt.Format(time.RFC3339),
		})
	}
	return out
}

// intArg reads an integer argument that arrives as float64 from JSON.
func intArg(args map[string]any, key string, fallback int) int {
	if v, ok := numArgValue(args[key]); ok {
		return v
	}
	return fallback
}

func numArg(args map[string]any, key string) (int, bool) {
	return numArgValue(args[key])
}

func numArgValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
