package recruitment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/scheduling"
)

type Interview struct {
	JobID       int64  `json:"job_id"`
	CandidateID int64  `json:"candidate_id"`
	ExpertID    int64  `json:"expert_id"`
	Slot        string `json:"slot"`
}

// Interviews is the ledger of booked interviews.
type Interviews struct {
	Items []*Interview
}

// PickExpert selects the expert sharing most skills with the job, preferring
// the earliest listed expert on ties.
func PickExpert(job *Job, experts []*Expert) (*Expert, error) {
	holders := make([]scheduling.Holder[int], 0, len(experts))
	for i, e := range experts {
		holders = append(holders, scheduling.Holder[int]{ID: i, Skills: e.SkillList()})
	}

	idx, ok := scheduling.Select(job.SkillList(), holders)
	if !ok {
		return nil, ErrNoExperts
	}
	return experts[idx], nil
}

// Schedule books the top match of the job with the best fitting expert.
func Schedule(job *Job, matches *Matches, experts []*Expert, now time.Time, delay time.Duration, logger *zap.Logger) (*Interview, error) {
	if job == nil {
		return nil, ErrJobRequired
	}

	top := matches.Top()
	if top == nil {
		return nil, fmt.Errorf("job %d: %w", job.ID, ErrNoMatches)
	}

	expert, err := PickExpert(job, experts)
	if err != nil {
		return nil, fmt.Errorf("job %d: %w", job.ID, err)
	}

	if logger != nil {
		logger.Debug("expert selected",
			zap.Int64("expert_id", expert.ID),
			zap.Int("skill_overlap", scheduling.Overlap(job.SkillList(), expert.SkillList())),
		)
	}

	return &Interview{
		JobID:       job.ID,
		CandidateID: top.CandidateID,
		ExpertID:    expert.ID,
		Slot:        scheduling.NextSlot(now, delay),
	}, nil
}

// LoadInterviews reads the ledger. A missing or empty file is an empty ledger.
func LoadInterviews(path string) (*Interviews, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Interviews{}, nil
		}
		return nil, err
	}

	var interviews Interviews
	if len(data) == 0 {
		return &interviews, nil
	}
	if err := json.Unmarshal(data, &interviews); err != nil {
		return nil, fmt.Errorf("parse interviews %q: %w", path, err)
	}
	return &interviews, nil
}

func (i *Interviews) Append(interview *Interview) {
	i.Items = append(i.Items, interview)
}

// ForJob returns the candidates already interviewed for the job.
func (i *Interviews) ForJob(jobID int64) []int64 {
	var ids []int64
	for _, interview := range i.Items {
		if interview.JobID == jobID {
			ids = append(ids, interview.CandidateID)
		}
	}
	return ids
}

func (i *Interviews) ToFile(path string) error {
	return writeJSON(path, i)
}
