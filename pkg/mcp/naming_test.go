package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitToolName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantServer string
		wantTool   string
		wantErr    bool
	}{
		{"simple", "kubernetes.get_pods", "kubernetes", "get_pods", false},
		{"hyphenated server", "argocd-server.list_apps", "argocd-server", "list_apps", false},
		{"missing dot", "get_pods", "", "", true},
		{"too many dots", "a.b.c", "", "", true},
		{"empty server", ".get_pods", "", "", true},
		{"empty tool", "kubernetes.", "", "", true},
		{"leading hyphen", "-bad.tool", "", "", true},
		{"empty string", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, tool, err := SplitToolName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid tool name")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantServer, server)
			assert.Equal(t, tt.wantTool, tool)
		})
	}
}
