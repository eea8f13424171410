package manager

import (
	"time"

	"github.com/google/uuid"
)

// RunSummary is reported when a run ends on self-collision.
type RunSummary struct {
	RunID        string
	Score        int
	Best         int
	Duration     time.Duration
	Runs         int
	AverageScore float64
}

// StateManager tracks the score of the current run and the best score of the
// session.
type StateManager struct {
	stats    *Stats
	now      func() time.Time
	runID    string
	runStart time.Time
	score    int
	best     int
}

func NewStateManager(stats *Stats) *StateManager {
	sm := &StateManager{
		stats: stats,
		now:   time.Now,
	}
	sm.startRun()
	return sm
}

func (sm *StateManager) startRun() {
	sm.runID = uuid.New().String()
	sm.runStart = sm.now()
	sm.score = 0
}

func (sm *StateManager) AddPoint() {
	sm.score++
}

// EndRun records the finished run, folds its score into the best score and
// starts a new run.
func (sm *StateManager) EndRun() RunSummary {
	end := sm.now()
	sm.stats.AddRun(sm.runID, sm.runStart, end, sm.score)
	if sm.score > sm.best {
		sm.best = sm.score
	}
	summary := RunSummary{
		RunID:        sm.runID,
		Score:        sm.score,
		Best:         sm.best,
		Duration:     end.Sub(sm.runStart),
		Runs:         sm.stats.Runs(),
		AverageScore: sm.stats.AverageScore(),
	}
	sm.startRun()
	return summary
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Best() int {
	return sm.best
}

func (sm *StateManager) RunID() string {
	return sm.runID
}

func (sm *StateManager) Stats() *Stats {
	return sm.stats
}
