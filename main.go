package main

import (
	"flag"
	"fmt"
	"os"

	"pong/config"
	"pong/engine"
	"pong/experiments"
	"pong/learner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults apply when empty")
	mode := flag.String("mode", "train", "train, play or experiment")
	games := flag.Int("games", 0, "Training games")
	eval := flag.Int("eval", 0, "Evaluation games")
	seed := flag.Uint64("seed", 0, "Random seed")
	table := flag.String("table", "", "Value table file written by train and read by play")
	render := flag.Bool("render", false, "Draw the court after every step of play")
	experiment := flag.String("experiment", "alpha", fmt.Sprintf("Experiment to run, one of %v", experiments.Names))
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}

	// Flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Learning.TrainGames = *games
		case "eval":
			cfg.Learning.EvalGames = *eval
		case "seed":
			cfg.Seed = *seed
		case "table":
			cfg.Output.TablePath = *table
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "train":
		train(cfg)
	case "play":
		play(cfg, *render)
	case "experiment":
		dir, err := experiments.RunNamed(*experiment, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Println(dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func train(cfg *config.Config) {
	session := engine.NewSession(cfg)
	report := session.Run()

	if cfg.Output.TablePath != "" {
		if err := session.Learner.Table().Save(cfg.Output.TablePath); err != nil {
			log.Fatal().Err(err).Msg("failed to save value table")
		}
		log.Info().Msgf("saved %d states to %s", report.States, cfg.Output.TablePath)
	}

	fmt.Println(report.Evaluation.Mean)
}

func play(cfg *config.Config, render bool) {
	if cfg.Output.TablePath == "" {
		log.Fatal().Msg("play needs a value table, pass -table")
	}
	table, err := learner.LoadTable(cfg.Output.TablePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load value table")
	}

	options := []engine.Option{engine.WithTable(table)}
	if render {
		options = append(options, engine.WithRender(os.Stdout))
	}
	report := engine.NewSession(cfg, options...).Evaluate()

	fmt.Println(report.Evaluation.Mean)
}
