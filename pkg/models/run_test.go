package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		agentLevel int
		want       Role
	}{
		{"coordinator at level 0", RunKindCoordinator, 0, RoleCoordinator},
		{"coordinator keeps its role at any level", RunKindCoordinator, 3, RoleCoordinator},
		{"first-level subagent", RunKindSubagent, 1, RoleSubagent},
		{"second-level subagent is a subsubagent", RunKindSubagent, 2, RoleSubsubagent},
		{"deeper levels stay subsubagent", RunKindSubagent, 5, RoleSubsubagent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRole(tt.kind, tt.agentLevel))
		})
	}
}
