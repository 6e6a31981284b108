package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-rrgraph/pkg/logging"
	"github.com/dd0wney/cluso-rrgraph/pkg/rrgraph"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
reserve:
  nodes: 1000
  edges: 4000
logging:
  level: debug
  output: stdout
metrics:
  enabled: true
  namespace: fpga
`))
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Reserve.Nodes)
	assert.Equal(t, 4000, cfg.Reserve.Edges)
	assert.Equal(t, 0, cfg.Reserve.Switches)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "fpga", cfg.Metrics.Namespace)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("reserve:\n  nodes: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{"malformed", "reserve: [", []string{"failed to parse config"}},
		{"negative reserve", "reserve:\n  nodes: -1\n  edges: -2\n", []string{"Reserve.Nodes", "Reserve.Edges"}},
		{"bad level", "logging:\n  level: chatty\n", []string{"Logging.Level"}},
		{"bad output", "logging:\n  output: syslog\n", []string{"Logging.Output"}},
		{"namespace with dash", "metrics:\n  namespace: fpga-graph\n", []string{"Metrics.Namespace", "metric name prefix"}},
		{"reserve beyond handle range", "reserve:\n  nodes: 3000000000\n", []string{"Reserve.Nodes", "exceeds maximum"}},
		{"metrics without namespace", "metrics:\n  enabled: true\n  namespace: \"\"\n", []string{"Metrics.Namespace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reserve:\n  segments: 3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Reserve.Segments)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing.yaml"))
}

func TestOptionsBuildWorkingGraph(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "debug"
	cfg.Metrics.Enabled = true
	cfg.Reserve.Nodes = 16

	var buf bytes.Buffer
	opts := cfg.Options(&buf)
	require.NotNil(t, opts.Metrics)
	assert.Equal(t, logging.DebugLevel, opts.Logger.GetLevel())
	assert.Equal(t, 16, opts.ReserveNodes)

	g := rrgraph.NewWithOptions(opts)
	g.CreateNode(rrgraph.Source)
	g.RebuildNodeEdges()
	assert.Contains(t, buf.String(), "adjacency rebuilt")
}

func TestOptionsDiscard(t *testing.T) {
	cfg := Default()
	cfg.Logging.Output = "discard"

	opts := cfg.Options(nil)
	_, isNop := opts.Logger.(logging.NopLogger)
	assert.True(t, isNop)
	assert.Nil(t, opts.Metrics)
}
