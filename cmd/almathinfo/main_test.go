package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	require.NoError(t, cfg.validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
dubins:
  target: [6, 0, 0]
  radius: 1
roots:
  coefficients: [1, -3, 2]
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, [3]float64{6, 0, 0}, cfg.Dubins.Target)
	assert.Equal(t, 1.0, cfg.Dubins.Radius)
	// Unset keys keep their defaults.
	assert.Equal(t, 0.1, cfg.Dubins.Step)
	assert.Equal(t, []float64{1, -3, 2}, cfg.Roots.Coefficients)
	assert.Equal(t, defaultConfig().Interp, cfg.Interp)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "hull: [unterminated"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "interp:\n  times: [0, 1]\n  points: [0]\n"))
	require.True(t, errors.Is(err, errInvalidConfig), "err = %v", err)

	_, err = loadConfig(writeConfig(t, "dubins:\n  radius: -1\n"))
	require.True(t, errors.Is(err, errInvalidConfig), "err = %v", err)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))

	_, err = newLogger("loud")
	require.Error(t, err)
}

func TestLookupAndList(t *testing.T) {
	for _, c := range registry {
		got, ok := lookup(c.name)
		require.True(t, ok, c.name)
		assert.Equal(t, c.name, got.name)
	}
	_, ok := lookup("nope")
	assert.False(t, ok)

	var buf bytes.Buffer
	printList(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(registry))
	assert.True(t, strings.HasPrefix(lines[0], "dubins"))
}

func TestRunCommands(t *testing.T) {
	cfg := defaultConfig()
	for _, tc := range []struct {
		name string
		want []string
	}{
		{"hull", []string{"Vertex", "0.0000  0.0000", "1.0000  3.0000"}},
		{"dubins", []string{"Checkpoint", "target", "5.0000", "kind "}},
		{"roots", []string{"|p(x)|", "2.0000", "-2.0000", "1.0000", "-1.0000"}},
		{"interp", []string{"Time", "3.0000"}},
		{"transform", []string{"row 3", "log", "quaternion 0.7071"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := lookup(tc.name)
			require.True(t, ok)
			var buf bytes.Buffer
			require.NoError(t, cmd.run(&buf, cfg, zap.NewNop()))
			out := buf.String()
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRunHullTable(t *testing.T) {
	cfg := defaultConfig()
	var buf bytes.Buffer
	require.NoError(t, runHull(&buf, cfg, zap.NewNop()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header, dashes and the closed hull (0,0) (2,0) (2,2) (1,3) (0,2) (0,0).
	require.Len(t, lines, 2+6)
	assert.True(t, strings.HasPrefix(lines[1], "------"))
}

func TestRunDubinsRejectsCloseTarget(t *testing.T) {
	cfg := defaultConfig()
	cfg.Dubins.Target = [3]float64{0.5, 0, 0}
	require.Error(t, runDubins(&bytes.Buffer{}, cfg, zap.NewNop()))
}

func TestCharts(t *testing.T) {
	cfg := defaultConfig()

	h, err := hullChart(cfg)
	require.NoError(t, err)
	require.Len(t, h.series, 2)
	assert.Len(t, h.series[0].pts, len(cfg.Hull.Points))
	assert.Equal(t, h.series[1].pts[0], h.series[1].pts[len(h.series[1].pts)-1])

	d, err := dubinsChart(cfg)
	require.NoError(t, err)
	last := d.series[0].pts[len(d.series[0].pts)-1]
	assert.InDelta(t, 5, last.X, 1e-6)
	assert.InDelta(t, 2, last.Y, 1e-6)
	assert.Len(t, d.series[1].pts, 3)

	in, err := interpChart(cfg)
	require.NoError(t, err)
	require.Len(t, in.series, 3)
	assert.Len(t, in.series[0].pts, 30)
	assert.InDelta(t, 3, in.series[0].pts[29].X, 1e-9)
}

func TestChartSave(t *testing.T) {
	c, err := hullChart(defaultConfig())
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "hull.png")
	require.NoError(t, c.save(file))
	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
