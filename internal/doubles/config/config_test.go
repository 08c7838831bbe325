package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/doubles/pkg/schedule"
)

func TestLoadMissingFile(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, schedule.DefaultConfig(), config)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `rounds: 12
seed: 77
weights:
  partner: 8
  imbalance: 500
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"rounds", config.Rounds, 12},
		{"seed", config.Seed, int64(77)},
		{"weights.partner", config.Weights.Partner, 8.0},
		{"weights.opponent", config.Weights.Opponent, 5.0},
		{"weights.fairness", config.Weights.Fairness, 2.0},
		{"weights.imbalance", config.Weights.Imbalance, 500.0},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("rounds: -1\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("rounds: [\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
