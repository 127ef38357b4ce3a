package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"pong/config"
	"pong/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func smallConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Seed = 5
	cfg.Learning.TrainGames = 12
	cfg.Learning.EvalGames = 3
	cfg.Output.ExperimentsDir = t.TempDir()
	cfg.Output.ChartWindow = 4
	cfg.Logging.LogEvery = 0
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestSweep(t *testing.T) {
	base := config.Default()
	configs := sweep(base, GammaSweep, func(c *metrics.AgentConfig, v float64) { c.Gamma = v })

	require.Len(t, configs, len(GammaSweep))
	for i, c := range configs {
		require.Equal(t, i+1, c.ID)
		require.Equal(t, GammaSweep[i], c.Gamma)
		require.Equal(t, base.Learning.Alpha, c.Alpha, "Only the swept parameter should change")
		require.Equal(t, base.Learning.Epsilon, c.Epsilon)
		require.Equal(t, base.Seed, c.Seed)
	}
}

func TestRun(t *testing.T) {
	t.Run("writes records and charts", func(t *testing.T) {
		cfg := smallConfig(t)
		configs := []metrics.AgentConfig{
			{ID: 1, Alpha: 0.5, Gamma: 0.9, Epsilon: 0.05, TrainGames: 12, EvalGames: 3, Seed: 5},
			{ID: 2, Alpha: 0.1, Gamma: 0.9, Epsilon: 0.05, TrainGames: 12, EvalGames: 3, Seed: 5},
		}

		dir, err := Run("alpha", cfg, configs)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(cfg.Output.ExperimentsDir, "alpha"), filepath.Dir(dir))

		require.Len(t, readCSV(t, filepath.Join(dir, "agent_configs.csv")), 3)
		require.Len(t, readCSV(t, filepath.Join(dir, "game_records.csv")), 1+2*(12+3))
		summaries := readCSV(t, filepath.Join(dir, "summary.csv"))
		require.Len(t, summaries, 3)
		require.Equal(t, "1", summaries[1][0])
		require.Equal(t, "2", summaries[2][0])

		require.FileExists(t, filepath.Join(dir, "learning_curves.html"))
		require.FileExists(t, filepath.Join(dir, "learning_curves.png"))
	})

	t.Run("rejects an invalid agent", func(t *testing.T) {
		cfg := smallConfig(t)
		configs := []metrics.AgentConfig{{ID: 1, Alpha: 1.5, TrainGames: 1, EvalGames: 1}}

		_, err := Run("alpha", cfg, configs)
		require.ErrorContains(t, err, "alpha 1.5 outside [0, 1]")
	})
}

func TestRunNamed(t *testing.T) {
	_, err := RunNamed("delta", smallConfig(t))
	require.ErrorContains(t, err, "unknown experiment")
}

func TestLearningCurve(t *testing.T) {
	records := func(n int) []metrics.GameRecord {
		out := make([]metrics.GameRecord, n)
		for i := range out {
			out[i].Game = i + 1
			out[i].Contacts = i
		}
		return out
	}

	t.Run("moving average", func(t *testing.T) {
		curve := LearningCurve("a", records(10), 5)

		require.Equal(t, "a", curve.Name)
		require.Len(t, curve.Mean, 6)
		require.Equal(t, 5, curve.Games[0], "First point should close the first full window")
		require.InDelta(t, 2.0, curve.Mean[0], 1e-12)
		require.InDelta(t, 7.0, curve.Mean[5], 1e-12)
		require.Equal(t, 10, curve.Games[5])
	})

	t.Run("window wider than the run", func(t *testing.T) {
		curve := LearningCurve("a", records(4), 50)

		require.Len(t, curve.Mean, 1)
		require.InDelta(t, 1.5, curve.Mean[0], 1e-12)
	})

	t.Run("empty", func(t *testing.T) {
		curve := LearningCurve("a", nil, 5)
		require.Empty(t, curve.Mean)
	})

	t.Run("downsampled", func(t *testing.T) {
		curve := LearningCurve("a", records(3000), 1)

		require.Len(t, curve.Mean, MaxChartPoints)
		require.Len(t, curve.Games, MaxChartPoints)
		require.Equal(t, 1, curve.Games[0])
		require.Equal(t, 2998, curve.Games[MaxChartPoints-1])
	})
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	curves := []Curve{
		{Name: "alpha=0.1", Games: []int{1, 2, 3}, Mean: []float64{0, 1, 2}},
		{Name: "alpha=0.5", Games: []int{1, 2}, Mean: []float64{1, 3}},
	}

	html := filepath.Join(dir, "curves.html")
	require.NoError(t, RenderHTML(html, "alpha sweep", curves))
	data, err := os.ReadFile(html)
	require.NoError(t, err)
	require.Contains(t, string(data), "alpha sweep")
	require.Contains(t, string(data), "alpha=0.5")

	png := filepath.Join(dir, "curves.png")
	require.NoError(t, RenderPNG(png, "alpha sweep", curves))
	info, err := os.Stat(png)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
