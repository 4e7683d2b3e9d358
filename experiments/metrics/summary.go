package metrics

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games played by one agent config.
type Summary struct {
	Agent     int
	Games     int
	Wins      int
	MeanScore float64
	StdScore  float64
	MeanMoves float64
}

// WinRate returns the fraction of games won.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Summarize groups game records by agent config, ordered by agent ID.
func Summarize(records []GameRecord, winOutcome string) []Summary {
	scores := map[int][]float64{}
	moves := map[int][]float64{}
	wins := map[int]int{}
	for _, record := range records {
		scores[record.Agent] = append(scores[record.Agent], record.Score)
		moves[record.Agent] = append(moves[record.Agent], float64(record.TotalMoves))
		if record.Outcome == winOutcome {
			wins[record.Agent]++
		}
	}

	agents := maps.Keys(scores)
	slices.Sort(agents)

	summaries := make([]Summary, 0, len(agents))
	for _, agent := range agents {
		mean, std := stat.MeanStdDev(scores[agent], nil)
		if len(scores[agent]) < 2 {
			std = 0
		}
		summaries = append(summaries, Summary{
			Agent:     agent,
			Games:     len(scores[agent]),
			Wins:      wins[agent],
			MeanScore: mean,
			StdScore:  std,
			MeanMoves: stat.Mean(moves[agent], nil),
		})
	}
	return summaries
}
