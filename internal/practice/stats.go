package practice

import "sort"

// AlgorithmStats tallies the history of one algorithm
type AlgorithmStats struct {
	AlgorithmID string
	Problems    int
	Solved      int // correct without seeing the answer
	Revealed    int
	Attempts    int
	BestCode    int // best analyzer percentage, -1 when no code was submitted
}

// Accuracy returns solved problems as a percentage of problems
func (s AlgorithmStats) Accuracy() int {
	if s.Problems == 0 {
		return 0
	}
	return s.Solved * 100 / s.Problems
}

// Summarize groups records by algorithm, sorted by algorithm id
func Summarize(records []*Record) []AlgorithmStats {
	byID := make(map[string]*AlgorithmStats)
	for _, r := range records {
		st, ok := byID[r.AlgorithmID]
		if !ok {
			st = &AlgorithmStats{AlgorithmID: r.AlgorithmID, BestCode: -1}
			byID[r.AlgorithmID] = st
		}
		st.Problems++
		st.Attempts += r.Attempts
		if r.Correct && !r.Revealed {
			st.Solved++
		}
		if r.Revealed {
			st.Revealed++
		}
		if r.CodeScore != nil && *r.CodeScore > st.BestCode {
			st.BestCode = *r.CodeScore
		}
	}

	out := make([]AlgorithmStats, 0, len(byID))
	for _, st := range byID {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AlgorithmID < out[j].AlgorithmID
	})
	return out
}
