package ranking

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[K comparable](results []Result[K]) []K {
	out := make([]K, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func TestRankEmptyCandidates(t *testing.T) {
	got := Rank[int]("looking for a go developer", nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankEmptyTextScoresZero(t *testing.T) {
	got := Rank("", []Document[int]{{ID: 1, Text: ""}})
	assert.Equal(t, []Result[int]{{ID: 1, Score: 0}}, got)
}

func TestRankRelevantCandidateFirst(t *testing.T) {
	got := Rank("Looking for a software engineer with python skills.", []Document[int]{
		{ID: 1, Text: "I am a software engineer with python and fastAPI skills."},
		{ID: 2, Text: "I am a chef with cooking skills."},
	})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID, "results: %v", got)
	assert.GreaterOrEqual(t, sortKey(got[0].Score), sortKey(got[1].Score))
}

func TestRankTieIgnoresLastBits(t *testing.T) {
	// Both cosines are equal in exact arithmetic but differ by one ulp.
	query := "Looking for a software engineer with python skills."
	engineer := Document[int]{ID: 1, Text: "I am a software engineer with python and fastAPI skills."}
	chef := Document[int]{ID: 2, Text: "I am a chef with cooking skills."}

	for _, order := range [][]Document[int]{{engineer, chef}, {chef, engineer}} {
		got := Rank(query, order)
		require.Len(t, got, 2)
		assert.Equal(t, []int{order[0].ID, order[1].ID}, ids(got))
		assert.Equal(t, sortKey(got[0].Score), sortKey(got[1].Score))
		assert.InDelta(t, got[0].Score, got[1].Score, 1e-12)
	}
}

func TestRankNoSharedTokens(t *testing.T) {
	got := Rank("anything", []Document[int]{{ID: 1, Text: "completely unrelated text about gardening"}})
	require.Len(t, got, 1)
	assert.Zero(t, got[0].Score)
}

func TestRankDeterministic(t *testing.T) {
	query := "Senior Go engineer\nBuild distributed services\nSkills: go, kubernetes, postgres"
	candidates := []Document[string]{
		{ID: "a", Text: "Go engineer, kubernetes operator author, postgres tuning"},
		{ID: "b", Text: "Python data scientist with pandas"},
		{ID: "c", Text: "Distributed services in Go and Rust"},
		{ID: "d", Text: ""},
		{ID: "e", Text: "Go go go kubernetes kubernetes"},
	}

	first := Rank(query, candidates)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Rank(query, candidates), "run %d", i)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	got := Rank("go developer", []Document[int]{
		{ID: 3, Text: "java"},
		{ID: 1, Text: "go developer"},
		{ID: 2, Text: "go developer"},
		{ID: 4, Text: "cooking"},
		{ID: 5, Text: "baking"},
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got))
	assert.Equal(t, got[0].Score, got[1].Score, "identical texts scored differently")
}

func TestRankSortedDescending(t *testing.T) {
	got := Rank("golang backend engineer postgres", []Document[int]{
		{ID: 1, Text: "frontend react designer"},
		{ID: 2, Text: "golang backend engineer"},
		{ID: 3, Text: "postgres administrator"},
		{ID: 4, Text: "golang backend engineer postgres expert"},
		{ID: 5, Text: "chef"},
	})

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, sortKey(got[i-1].Score), sortKey(got[i].Score), "position %d: %v", i, got)
	}
}

func TestRankScoresFiniteAndBounded(t *testing.T) {
	cases := []struct {
		query      string
		candidates []string
	}{
		{"go", []string{"go"}},
		{"go go go", []string{"go", "go python"}},
		{"", []string{"", "x", "python"}},
		{"python developer", []string{"python developer golang", "golang chef", "python"}},
		{"a b c", []string{"d e f"}},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			docs := make([]Document[int], 0, len(tc.candidates))
			for id, text := range tc.candidates {
				docs = append(docs, Document[int]{ID: id, Text: text})
			}
			for _, r := range Rank(tc.query, docs) {
				assert.False(t, math.IsNaN(r.Score) || math.IsInf(r.Score, 0), "candidate %d: score %f", r.ID, r.Score)
				assert.InDelta(t, 0, r.Score, 1+1e-9, "candidate %d", r.ID)
			}
		})
	}
}

func TestRankNegativeIDFTolerated(t *testing.T) {
	// With N=2 and "go" in both documents, idf = ln(2/3) < 0 on every
	// dimension; the vectors still point the same way.
	got := Rank("go", []Document[int]{{ID: 1, Text: "go"}})
	assert.InDelta(t, 1, got[0].Score, 1e-9)
}

func TestRankDependsOnCandidateSet(t *testing.T) {
	query := "python developer"
	alone := Rank(query, []Document[int]{{ID: 1, Text: "python developer golang"}})
	withOthers := Rank(query, []Document[int]{
		{ID: 1, Text: "python developer golang"},
		{ID: 2, Text: "golang chef"},
	})

	assert.InDelta(t, 1, alone[0].Score, 1e-9)

	score := -1.0
	for _, r := range withOthers {
		if r.ID == 1 {
			score = r.Score
		}
	}
	assert.Zero(t, score)
}
