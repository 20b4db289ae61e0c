package recruitment

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	ID         int64
	JobID      int64
	Reason     string
	ExcludedAt time.Time
}

// GetExcludedCandidatesFromFile reads an exclude file. A missing or empty file
// is an empty list.
func GetExcludedCandidatesFromFile(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ExcludedCandidates{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	e.Items = append(e.Items, s.Items...)
}

// ForJob returns the candidates excluded from jobID. Entries without a job
// apply to every job.
func (e *ExcludedCandidates) ForJob(jobID int64) []int64 {
	var ids []int64
	for _, c := range e.Items {
		if c.JobID == 0 || c.JobID == jobID {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (e *ExcludedCandidates) IDs() []int64 {
	ids := make([]int64, 0, len(e.Items))
	for _, c := range e.Items {
		ids = append(ids, c.ID)
	}
	return ids
}

func (e *ExcludedCandidates) ToFile(path string) error {
	return writeJSON(path, e)
}

func writeJSON(path string, v any) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
