package metrics

import (
	"time"
)

type SearchMetric struct {
	Searcher string
	Depth    int
	Duration time.Duration
	Nodes    int // Expanded nodes
	Leaves   int // Evaluated leaves
	Prunes   int // Cut-offs (alpha-beta only)
}

type MoveMetric struct {
	Step   int
	Agent  int // Agent index
	Action string
	SearchMetric
}

type GameMetric struct {
	Layout     string
	Outcome    string
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(searcher string, depth int)
	AddNode()
	AddLeaf()
	AddPrune()
	Complete() SearchMetric
}

type collector struct {
	searcher  string
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(searcher string, depth int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.depth = depth
	m.nodes = 0
	m.leaves = 0
	m.prunes = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher: m.searcher,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Prunes:   m.prunes,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) AddPrune()                        {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
