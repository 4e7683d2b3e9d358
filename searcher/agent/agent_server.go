package agent

import (
	"encoding/json"
	"fmt"
	"net/http"

	"multiagent/game"
	"multiagent/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type findMoveRequest struct {
	Layout     string `json:"layout"`
	Searcher   string `json:"searcher"`
	Depth      int    `json:"depth"`
	Evaluation string `json:"evaluation"`
}

type findMoveResponse struct {
	Action string `json:"action"`
	Nodes  int    `json:"nodes"`
	Leaves int    `json:"leaves"`
	Prunes int    `json:"prunes"`
}

// StartAgentServer serves POST /findmove on addr until the server fails.
func StartAgentServer(addr string) error {
	log.Info().Str("addr", addr).Msg("starting agent server")
	return http.ListenAndServe(addr, NewHandler())
}

// NewHandler returns the agent server routes.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", handleFindMove)
	return mux
}

func handleFindMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload findMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	state, s, err := payload.build()
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	action, metric := NewSearchAgent(s).FindMove(state, searcher.Controlled)
	if action == nil {
		http.Error(w, "no legal action for the controlled agent", http.StatusUnprocessableEntity)
		return
	}
	log.Debug().Str("searcher", payload.Searcher).Int("nodes", metric.Nodes).Msgf("found move %v", action)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(findMoveResponse{
		Action: fmt.Sprint(action),
		Nodes:  metric.Nodes,
		Leaves: metric.Leaves,
		Prunes: metric.Prunes,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode move")
	}
}

func (p findMoveRequest) build() (game.State, searcher.Searcher, error) {
	state, err := game.ParseLayout(p.Layout)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid layout")
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if p.Depth != 0 {
		options = append(options, searcher.WithDepth(p.Depth))
	}
	if p.Evaluation != "" {
		evaluate, err := game.EvaluateFn(p.Evaluation)
		if err != nil {
			return nil, nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	name := p.Searcher
	if name == "" {
		name = searcher.AlphaBetaName
	}
	s, err := searcher.New(name, options...)
	if err != nil {
		return nil, nil, err
	}
	return state, s, nil
}
