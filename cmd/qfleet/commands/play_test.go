package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetPlayFlags(t *testing.T) {
	t.Helper()
	playConfigPath = ""
	playSize = 8
	playShips = []int{4, 3, 3, 2}
	playShots = 0
	playSeed = 0
	playShowHidden = true
	// Clear the "changed" markers between tests
	playCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
}

func TestResolvePlayConfig_Defaults(t *testing.T) {
	resetPlayFlags(t)

	cfg, err := resolvePlayConfig(playCmd)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Size)
	assert.Equal(t, []int{4, 3, 3, 2}, cfg.Ships)
}

func TestResolvePlayConfig_FlagOverrides(t *testing.T) {
	resetPlayFlags(t)

	require.NoError(t, playCmd.Flags().Set("size", "6"))
	require.NoError(t, playCmd.Flags().Set("ship", "3,2"))
	require.NoError(t, playCmd.Flags().Set("seed", "7"))

	cfg, err := resolvePlayConfig(playCmd)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Board.Size)
	assert.Equal(t, []int{3, 2}, cfg.Ships)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestResolvePlayConfig_ConfigFileWithFlagWins(t *testing.T) {
	resetPlayFlags(t)

	path := filepath.Join(t.TempDir(), "qfleet.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1.0"
board:
  size: 10
ships: [2]
seed: 5
`), 0o644))

	playConfigPath = path
	require.NoError(t, playCmd.Flags().Set("size", "4"))

	cfg, err := resolvePlayConfig(playCmd)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Board.Size, "explicit flag beats config file")
	assert.Equal(t, []int{2}, cfg.Ships, "config file beats default")
	assert.Equal(t, int64(5), cfg.Seed)
}

func TestResolvePlayConfig_InvalidMerge(t *testing.T) {
	resetPlayFlags(t)

	require.NoError(t, playCmd.Flags().Set("size", "2"))

	_, err := resolvePlayConfig(playCmd)
	assert.Error(t, err, "default fleet cannot fit on a 2x2 board")
}
