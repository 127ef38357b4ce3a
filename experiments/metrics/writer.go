package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	Agent int // AgentConfig.ID
	Game  int // 1-based within the agent's phase
	GameMetric
}

type SummaryRecord struct {
	Agent  int // AgentConfig.ID
	Mean   float64
	StdDev float64
	Best   int
	States int
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<run id> for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	run := uuid.New().String()[:8]
	baseDir := filepath.Join(root, name, timestamp+"-"+run)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "alpha", "gamma", "epsilon", "train_games", "eval_games", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			formatFloat(config.Alpha),
			formatFloat(config.Gamma),
			formatFloat(config.Epsilon),
			strconv.Itoa(config.TrainGames),
			strconv.Itoa(config.EvalGames),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"agent", "phase", "game", "contacts", "steps", "states", "capped", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent),
			string(record.Phase),
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Contacts),
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.States),
			strconv.FormatBool(record.Capped),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(records []SummaryRecord) error {
	header := []string{"agent", "mean_contacts", "stddev_contacts", "best_contacts", "states"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent),
			formatFloat(record.Mean),
			formatFloat(record.StdDev),
			strconv.Itoa(record.Best),
			strconv.Itoa(record.States),
		})
	}
	return w.write("summary.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
