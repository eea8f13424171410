package manager

import (
	"sort"
	"time"
)

// GroupSize is how many records of one compression level are folded into a
// single record of the next level.
const GroupSize = 100

// RunRecord describes one run, or a group of runs once compressed.
type RunRecord struct {
	RunID            string // empty for groups
	Start            time.Time
	End              time.Time
	Score            int
	CompressionIndex int // 0 for a single run
	RunsCount        int
	AverageScore     float64
	MedianScore      float64
	MaxScore         int
	MinScore         int
	AverageDuration  time.Duration
}

// Stats keeps the run history of the current process. Old runs are folded
// into groups so the history stays small during long sessions.
type Stats struct {
	records []RunRecord
}

func NewStats() *Stats {
	return &Stats{records: make([]RunRecord, 0)}
}

func (s *Stats) AddRun(runID string, start, end time.Time, score int) {
	s.records = append(s.records, RunRecord{
		RunID:           runID,
		Start:           start,
		End:             end,
		Score:           score,
		RunsCount:       1,
		AverageScore:    float64(score),
		MedianScore:     float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: end.Sub(start),
	})
	s.compress()
}

func (s *Stats) compress() {
	for level := 0; ; level++ {
		var same, rest []RunRecord
		for _, r := range s.records {
			if r.CompressionIndex == level {
				same = append(same, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(same) < GroupSize {
			return
		}

		sort.Slice(same, func(i, j int) bool { return same[i].Start.Before(same[j].Start) })
		for len(same) >= GroupSize {
			rest = append(rest, mergeRecords(same[:GroupSize], level+1))
			same = same[GroupSize:]
		}
		s.records = append(rest, same...)
	}
}

func mergeRecords(group []RunRecord, level int) RunRecord {
	merged := RunRecord{
		Start:            group[0].Start,
		End:              group[0].End,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
	}
	var totalScore float64
	var totalDuration time.Duration
	medians := make([]float64, 0, len(group))
	for _, r := range group {
		if r.MaxScore > merged.MaxScore {
			merged.MaxScore = r.MaxScore
		}
		if r.MinScore < merged.MinScore {
			merged.MinScore = r.MinScore
		}
		if r.Start.Before(merged.Start) {
			merged.Start = r.Start
		}
		if r.End.After(merged.End) {
			merged.End = r.End
		}
		totalScore += r.AverageScore * float64(r.RunsCount)
		totalDuration += r.AverageDuration * time.Duration(r.RunsCount)
		merged.RunsCount += r.RunsCount
		for i := 0; i < r.RunsCount; i++ {
			medians = append(medians, r.MedianScore)
		}
	}
	merged.AverageScore = totalScore / float64(merged.RunsCount)
	merged.AverageDuration = totalDuration / time.Duration(merged.RunsCount)
	merged.MedianScore = median(medians)
	return merged
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// Records returns a copy of the history.
func (s *Stats) Records() []RunRecord {
	out := make([]RunRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Stats) Runs() int {
	total := 0
	for _, r := range s.records {
		total += r.RunsCount
	}
	return total
}

func (s *Stats) AverageScore() float64 {
	runs := s.Runs()
	if runs == 0 {
		return 0
	}
	var total float64
	for _, r := range s.records {
		total += r.AverageScore * float64(r.RunsCount)
	}
	return total / float64(runs)
}

func (s *Stats) MaxScore() int {
	best := 0
	for _, r := range s.records {
		if r.MaxScore > best {
			best = r.MaxScore
		}
	}
	return best
}
