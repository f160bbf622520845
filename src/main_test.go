package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeboard/src/config"
)

func parseOverrides(t *testing.T, args ...string) (*EnvOptions, flagOverrides) {
	t.Helper()
	eo := &EnvOptions{}
	fo := flagOverrides{}
	p := newParser(eo, &fo)
	require.NoError(t, p.ParseArgs(args))
	fo.given = givenFlags(p)
	return eo, fo
}

func TestFlagOverrides_Apply(t *testing.T) {
	_, fo := parseOverrides(t, "-k", "60", "--interval", "10ms", "--seed", "3", "--stopWhenStable")
	cfg := config.Default()
	fo.apply(&cfg)

	assert.Equal(t, 60, cfg.Cols)
	assert.Equal(t, 10*time.Millisecond, cfg.Interval)
	assert.Equal(t, int64(3), cfg.Seed)
	assert.True(t, cfg.StopWhenStable)
	assert.Equal(t, 1600.0, cfg.Width, "unset flags keep the configured value")
	assert.Equal(t, config.DefLogLevel, cfg.LogLevel)
}

func TestFlagOverrides_ZeroValuesOverrideFile(t *testing.T) {
	cfg := config.Default()
	cfg.StopWhenStable = true
	cfg.Seed = 42
	cfg.MaxSteps = 100
	cfg.Workers = 4

	_, fo := parseOverrides(t, "--stopWhenStable=false", "--seed", "0", "-s", "0")
	fo.apply(&cfg)

	assert.False(t, cfg.StopWhenStable)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0, cfg.MaxSteps)
	assert.Equal(t, 4, cfg.Workers)
}

func TestFlagOverrides_NoFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42
	eo, fo := parseOverrides(t, "-n", "-t", "plane")
	fo.apply(&cfg)

	assert.Equal(t, config.Default().Cols, cfg.Cols)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, eo.interactive)
	assert.Equal(t, "plane", eo.template)
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(logrus.InfoLevel)

	cfg := config.Default()
	cfg.LogLevel = "warn"
	require.NoError(t, setupLogging(cfg, true))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.Equal(t, io.Discard, logrus.StandardLogger().Out)

	cfg.LogFile = filepath.Join(t.TempDir(), "lifeboard.log")
	require.NoError(t, setupLogging(cfg, true))
	logrus.Warn("to the file")
	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to the file")

	cfg.LogLevel = "loud"
	assert.Error(t, setupLogging(cfg, false))
}
