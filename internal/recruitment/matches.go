package recruitment

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/ranking"
)

type Match struct {
	JobID       int64   `json:"job_id"`
	CandidateID int64   `json:"candidate_id"`
	Score       float64 `json:"score"`

	Candidate *Candidate `json:"-"`
}

// Matches is a ranked list, best first.
type Matches struct {
	Items []*Match
}

// RankCandidates ranks the roster candidates against the job.
func RankCandidates(job *Job, candidates []*Candidate, logger *zap.Logger) *Matches {
	docs := make([]ranking.Document[int64], 0, len(candidates))
	for _, c := range candidates {
		docs = append(docs, ranking.Document[int64]{ID: c.ID, Text: c.Resume(logger)})
	}

	return NewMatches(job.ID, ranking.Rank(job.QueryText(), docs), candidates)
}

// NewMatches keeps the order of results and links every match to its
// candidate when one is known.
func NewMatches(jobID int64, results []ranking.Result[int64], candidates []*Candidate) *Matches {
	byID := make(map[int64]*Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	matches := &Matches{Items: make([]*Match, 0, len(results))}
	for _, r := range results {
		matches.Items = append(matches.Items, &Match{
			JobID:       jobID,
			CandidateID: r.ID,
			Score:       r.Score,
			Candidate:   byID[r.ID],
		})
	}
	return matches
}

func (m *Matches) Len() int {
	return len(m.Items)
}

// Top returns the best match or nil.
func (m *Matches) Top() *Match {
	if len(m.Items) == 0 {
		return nil
	}
	return m.Items[0]
}

func (m *Matches) FindByCandidate(id int64) *Match {
	for _, match := range m.Items {
		if match.CandidateID == id {
			return match
		}
	}
	return nil
}

func (m *Matches) CandidateIDs() []int64 {
	ids := make([]int64, 0, len(m.Items))
	for _, match := range m.Items {
		ids = append(ids, match.CandidateID)
	}
	return ids
}

// Exclude removes matches of the given candidates, keeping the ranking order,
// and returns the removed candidate ids.
func (m *Matches) Exclude(ids []int64) []int64 {
	return m.Drop(func(match *Match) bool {
		for _, id := range ids {
			if match.CandidateID == id {
				return true
			}
		}
		return false
	})
}

// Drop removes every match for which drop returns true, keeping order, and
// returns the removed candidate ids.
func (m *Matches) Drop(drop func(*Match) bool) []int64 {
	var removed []int64
	kept := m.Items[:0]
	for _, match := range m.Items {
		if drop(match) {
			removed = append(removed, match.CandidateID)
			continue
		}
		kept = append(kept, match)
	}
	m.Items = kept
	return removed
}

// Report describes every match in ranking order.
func (m *Matches) Report() []map[string]string {
	report := make([]map[string]string, 0, len(m.Items))
	for i, match := range m.Items {
		row := map[string]string{
			"rank":         fmt.Sprintf("%d", i+1),
			"candidate_id": fmt.Sprintf("%d", match.CandidateID),
			"score":        fmt.Sprintf("%.4f", match.Score),
		}
		if match.Candidate != nil {
			row["name"] = match.Candidate.Name
			row["email"] = match.Candidate.Email
		}
		report = append(report, row)
	}
	return report
}

func (m *Matches) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (m *Matches) ToExcluded(reason string) *ExcludedCandidates {
	excluded := &ExcludedCandidates{}
	for _, match := range m.Items {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			ID:         match.CandidateID,
			JobID:      match.JobID,
			Reason:     reason,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}
