package recruitment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJobQueryText(t *testing.T) {
	job := &Job{Title: "Backend Engineer", Description: "Build APIs", Skills: "go, sql"}
	assert.Equal(t, "Backend Engineer\nBuild APIs\nSkills: go, sql", job.QueryText())
	assert.Equal(t, []string{"go", " sql"}, job.SkillList())
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	content := `{
		"job": {"id": 1, "title": "Go Developer", "description": "Services", "skills": "go,postgres"},
		"candidates": [
			{"id": 10, "name": "Anna", "email": "anna@example.com", "resume_text": "go postgres"},
			{"id": "11", "name": "Boris", "email": "boris@example.com", "resume_file": "boris.txt"}
		],
		"experts": [
			{"id": 3, "name": "Eve", "email": "eve@example.com", "skills": "go"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.NoError(t, roster.Validate())

	require.NotNil(t, roster.Job)
	assert.Equal(t, int64(1), roster.Job.ID)
	assert.Equal(t, "go,postgres", roster.Job.Skills)

	require.Len(t, roster.Candidates, 2)
	assert.Equal(t, int64(11), roster.Candidates[1].ID)
	assert.Equal(t, "boris.txt", roster.Candidates[1].ResumeFile)
	assert.Equal(t, "go postgres", roster.FindCandidate(10).ResumeText)
	assert.Nil(t, roster.FindCandidate(99))

	require.Len(t, roster.Experts, 1)
	assert.Equal(t, "Eve", roster.FindExpert(3).Name)
}

func TestLoadRosterErrors(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadRoster(path)
	assert.Error(t, err)
}

func TestRosterValidate(t *testing.T) {
	assert.ErrorIs(t, (&Roster{}).Validate(), ErrJobRequired)

	dupCandidates := &Roster{
		Job:        &Job{ID: 1},
		Candidates: []*Candidate{{ID: 1}, {ID: 1}},
	}
	assert.ErrorIs(t, dupCandidates.Validate(), ErrDuplicateID)

	dupExperts := &Roster{
		Job:     &Job{ID: 1},
		Experts: []*Expert{{ID: 2}, {ID: 2}},
	}
	assert.ErrorIs(t, dupExperts.Validate(), ErrDuplicateID)
}

func TestLoadRosterRejectsNullEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		entry   string
	}{
		{
			name:    "null candidate",
			content: `{"job": {"id": 1}, "candidates": [{"id": 1, "resume_text": "go"}, null]}`,
			entry:   "candidate #1",
		},
		{
			name:    "null expert",
			content: `{"job": {"id": 1}, "candidates": [{"id": 1}], "experts": [null]}`,
			entry:   "expert #0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roster.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			roster, err := LoadRoster(path)
			require.NoError(t, err)

			err = roster.Validate()
			require.ErrorIs(t, err, ErrEmptyEntry)
			assert.Contains(t, err.Error(), tt.entry)
		})
	}
}

func TestRosterMerge(t *testing.T) {
	roster := &Roster{Candidates: []*Candidate{{ID: 1}}}
	roster.Merge(&Roster{
		Job:        &Job{ID: 5},
		Candidates: []*Candidate{{ID: 2}, {ID: 3}},
		Experts:    []*Expert{{ID: 9}},
	})

	assert.Equal(t, int64(5), roster.Job.ID)
	assert.Len(t, roster.Candidates, 1)
	assert.Len(t, roster.Experts, 1)

	roster.Merge(nil)
	assert.Equal(t, int64(5), roster.Job.ID)
}

func TestCandidateResume(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(file, []byte("  python engineer \n"), 0o644))

	inline := &Candidate{ResumeText: "inline text", ResumeFile: file}
	assert.Equal(t, "inline text", inline.Resume(zap.NewNop()))

	fromFile := &Candidate{ResumeFile: file}
	assert.Equal(t, "python engineer", fromFile.Resume(zap.NewNop()))

	missing := &Candidate{ID: 4, ResumeFile: filepath.Join(dir, "nope.txt")}
	assert.Equal(t, "", missing.Resume(nil))
}
