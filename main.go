package main

import (
	"flag"
	"os"
	"time"

	"multiagent/experiments"
	"multiagent/experiments/metrics"
	"multiagent/meta"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	layout     string
	searcher   string
	depth      int
	evaluation string
	games      int
	seed       uint64
	out        string
}

func main() {
	mode := flag.String("mode", "play", "play, experiment or serve")
	experiment := flag.String("experiment", "comparison", "Experiment to run: comparison or depth")
	addr := flag.String("addr", ":8080", "Address of the agent server")
	verbose := flag.Bool("v", false, "Log every game and search")

	var cfg config
	flag.StringVar(&cfg.layout, "layout", "minimax", "Built-in layout to play on")
	flag.StringVar(&cfg.searcher, "searcher", "alphabeta", "Searcher for the controlled agent: minimax, alphabeta, expectimax or greedy")
	flag.IntVar(&cfg.depth, "depth", meta.DEFAULT_DEPTH, "Search depth in rounds")
	flag.StringVar(&cfg.evaluation, "eval", "score", "Evaluation function: score or better")
	flag.IntVar(&cfg.games, "games", 1, "Number of games to play")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Seed for ghosts and tie-breaks")
	flag.StringVar(&cfg.out, "out", "", "Directory to store experiment records in")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "play":
		err = play(cfg)
	case "experiment":
		err = runExperiment(*experiment, cfg)
	case "serve":
		err = agent.StartAgentServer(*addr)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// play runs cfg.games games of the chosen searcher against random ghosts
func play(cfg config) error {
	opts := experiments.Options{Layout: cfg.layout, Games: cfg.games, OutDir: cfg.out, Seed: cfg.seed}
	agentConfig := metrics.AgentConfig{ID: 1, Searcher: cfg.searcher, Depth: cfg.depth, Evaluation: cfg.evaluation}

	_, err := experiments.RunMatch(opts, agentConfig)
	return err
}

func runExperiment(name string, cfg config) error {
	opts := experiments.Options{Layout: cfg.layout, Games: cfg.games, OutDir: cfg.out, Seed: cfg.seed}

	var err error
	switch name {
	case "comparison":
		_, err = experiments.RunComparisonExperiment(opts)
	case "depth":
		_, err = experiments.RunDepthExperiment(opts)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	return err
}
