// Package recruitment holds the job, candidate and expert roster and turns
// ranking and skill selection results into matches and interviews.
package recruitment

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/tris010/recruitment-system/internal/scheduling"
)

type Job struct {
	ID          int64  `json:"id" mapstructure:"id"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	// Skills is comma-separated.
	Skills string `json:"skills,omitempty" mapstructure:"skills"`
}

type Candidate struct {
	ID         int64  `json:"id" mapstructure:"id"`
	Name       string `json:"name" mapstructure:"name"`
	Email      string `json:"email" mapstructure:"email"`
	ResumeText string `json:"resume_text,omitempty" mapstructure:"resume_text"`
	// ResumeFile is a plain-text resume, read when ResumeText is empty.
	ResumeFile string `json:"resume_file,omitempty" mapstructure:"resume_file"`
}

type Expert struct {
	ID     int64  `json:"id" mapstructure:"id"`
	Name   string `json:"name" mapstructure:"name"`
	Email  string `json:"email" mapstructure:"email"`
	Skills string `json:"skills,omitempty" mapstructure:"skills"`
}

type Roster struct {
	Job        *Job         `json:"job" mapstructure:"job"`
	Candidates []*Candidate `json:"candidates" mapstructure:"candidates"`
	Experts    []*Expert    `json:"experts" mapstructure:"experts"`
}

// QueryText joins the job fields into the text candidates are ranked against.
func (j *Job) QueryText() string {
	return fmt.Sprintf("%s\n%s\nSkills: %s", j.Title, j.Description, j.Skills)
}

func (j *Job) SkillList() []string {
	return scheduling.SplitSkills(j.Skills)
}

func (e *Expert) SkillList() []string {
	return scheduling.SplitSkills(e.Skills)
}

// Resume returns the inline resume text or, when it is empty, the content of
// ResumeFile. An unreadable file yields an empty resume.
func (c *Candidate) Resume(logger *zap.Logger) string {
	if c.ResumeText != "" || strings.TrimSpace(c.ResumeFile) == "" {
		return c.ResumeText
	}

	data, err := os.ReadFile(strings.TrimSpace(c.ResumeFile))
	if err != nil {
		if logger != nil {
			logger.Warn("reading resume file failed, using empty resume",
				zap.Int64("candidate_id", c.ID),
				zap.String("resume_file", c.ResumeFile),
				zap.Error(err),
			)
		}
		return ""
	}

	return strings.TrimSpace(string(data))
}

// LoadRoster reads a JSON roster file.
func LoadRoster(path string) (*Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw map[string]any
	dec := json.NewDecoder(file)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse roster %q: %w", path, err)
	}

	return DecodeRoster(raw)
}

// DecodeRoster decodes a loosely typed roster. Ids may be numbers or numeric
// strings.
func DecodeRoster(raw map[string]any) (*Roster, error) {
	var roster Roster

	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           &roster,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	return &roster, nil
}

// Merge fills sections missing in r from other.
func (r *Roster) Merge(other *Roster) {
	if other == nil {
		return
	}
	if r.Job == nil {
		r.Job = other.Job
	}
	if len(r.Candidates) == 0 {
		r.Candidates = other.Candidates
	}
	if len(r.Experts) == 0 {
		r.Experts = other.Experts
	}
}

func (r *Roster) Validate() error {
	if r.Job == nil {
		return ErrJobRequired
	}

	seen := make(map[int64]bool, len(r.Candidates))
	for i, c := range r.Candidates {
		if c == nil {
			return fmt.Errorf("candidate #%d: %w", i, ErrEmptyEntry)
		}
		if seen[c.ID] {
			return fmt.Errorf("candidate %d: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
	}

	seen = make(map[int64]bool, len(r.Experts))
	for i, e := range r.Experts {
		if e == nil {
			return fmt.Errorf("expert #%d: %w", i, ErrEmptyEntry)
		}
		if seen[e.ID] {
			return fmt.Errorf("expert %d: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = true
	}

	return nil
}

func (r *Roster) FindCandidate(id int64) *Candidate {
	for _, c := range r.Candidates {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *Roster) FindExpert(id int64) *Expert {
	for _, e := range r.Experts {
		if e.ID == id {
			return e
		}
	}
	return nil
}
