package experiments

import (
	"multiagent/engine"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
	"multiagent/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 10 // Per agent config

// Options configures an experiment run.
type Options struct {
	Layout string
	Games  int
	OutDir string // Records go to OutDir/<experiment>/<timestamp>
	Seed   uint64
}

var comparisonConfigs = []metrics.AgentConfig{
	{ID: 1, Searcher: searcher.MinimaxName, Depth: 2, Evaluation: "better"},
	{ID: 2, Searcher: searcher.AlphaBetaName, Depth: 2, Evaluation: "better"},
	{ID: 3, Searcher: searcher.ExpectimaxName, Depth: 2, Evaluation: "better"},
	{ID: 4, Searcher: searcher.GreedyName, Depth: 1, Evaluation: "better"},
}

// RunComparisonExperiment plays every searcher against random ghosts.
func RunComparisonExperiment(opts Options) ([]metrics.Summary, error) {
	return runExperiment("comparison", opts, comparisonConfigs)
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig) ([]metrics.Summary, error) {
	if opts.Games <= 0 {
		opts.Games = NumGames
	}
	if _, err := game.Layout(opts.Layout); err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(opts.Seed))

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on layout %s...", name, opts.Layout)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		for i := 0; i < opts.Games; i++ {
			outcome, gameMetric, moveMetrics, err := runGame(config, opts.Layout, r)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to run game with agent %d", config.ID)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed config %d game %d of %d: %s with score %v", ci+1, i+1, opts.Games, outcome, gameMetric.Score)
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	summaries := metrics.Summarize(gameRecords, string(engine.Win))
	for _, s := range summaries {
		log.Info().
			Int("agent", s.Agent).
			Int("games", s.Games).
			Float64("win_rate", s.WinRate()).
			Float64("mean_score", s.MeanScore).
			Float64("std_score", s.StdScore).
			Msg("summary")
	}

	if opts.OutDir == "" {
		return summaries, nil
	}
	if err := store(name, opts.OutDir, configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}
	return summaries, nil
}

func store(name, outDir string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return errors.Wrap(err, "failed to write game records")
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return errors.Wrap(err, "failed to write move records")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame plays one game of config's searcher against random ghosts
func runGame(config metrics.AgentConfig, layout string, r *rand.Rand) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.Layout(layout)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	s, err := createSearcher(config, r)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	agents := []agent.Agent{agent.NewSearchAgent(s)}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(rand.New(rand.NewSource(r.Uint64()))))
	}
	e := engine.LocalEngine(layout, state, agents)

	outcome, gameMetric, moveMetrics := e.Run()
	return outcome, gameMetric, moveMetrics, nil
}

func createSearcher(config metrics.AgentConfig, r *rand.Rand) (searcher.Searcher, error) {
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithRand(rand.New(rand.NewSource(r.Uint64()))),
		searcher.WithMetrics(),
	}

	if config.Evaluation != "" {
		evaluate, err := game.EvaluateFn(config.Evaluation)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	return searcher.New(config.Searcher, options...)
}

// RunMatch plays a single agent config against random ghosts.
func RunMatch(opts Options, config metrics.AgentConfig) ([]metrics.Summary, error) {
	return runExperiment("match", opts, []metrics.AgentConfig{config})
}
