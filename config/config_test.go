package config

import (
	"os"
	"path/filepath"
	"testing"

	"pong/game"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, *game.StandardPhysics(), cfg.Physics)
	require.Equal(t, 5000, cfg.Learning.EvalGames)
}

func TestLoad(t *testing.T) {
	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, `
seed: 7
learning:
  train_games: 200
  alpha: 0.2
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, 200, cfg.Learning.TrainGames)
		require.Equal(t, 0.2, cfg.Learning.Alpha)
		require.Equal(t, Default().Learning.Gamma, cfg.Learning.Gamma, "Unset gamma should keep its default")
		require.Equal(t, 0.2, cfg.Physics.PaddleHeight, "Unset physics should keep the standard court")
	})

	t.Run("explicit zero is honoured", func(t *testing.T) {
		path := writeConfig(t, `
learning:
  epsilon: 0
  train_games: 0
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		require.Zero(t, cfg.Learning.Epsilon)
		require.Zero(t, cfg.Learning.TrainGames)
	})

	t.Run("physics and serve overrides", func(t *testing.T) {
		path := writeConfig(t, `
physics:
  paddle_step: 0.05
  serve:
    ball_y: 0.25
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 0.05, cfg.Physics.PaddleStep)
		require.Equal(t, 0.25, cfg.Physics.Serve.BallY)
		require.Equal(t, 0.03, cfg.Physics.Serve.VelocityX, "Other serve fields should keep defaults")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, `
learning:
  alpha: 1.5
  eval_games: -1
logging:
  level: loud
`)
		_, err := Load(path)

		require.Error(t, err)
		require.ErrorContains(t, err, "alpha 1.5 outside [0, 1]")
		require.ErrorContains(t, err, "game counts")
		require.ErrorContains(t, err, "log level")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "learning: [1, 2"))
		require.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "failed to read config")
	})
}
