// Package ranking scores candidate documents against a query with TF-IDF
// weighted cosine similarity.
//
// Document frequencies are computed per call over the query and the
// candidates, so scores for the same pair change when the candidate set does.
package ranking

import (
	"math"
	"sort"
)

// tieScale is the resolution at which scores are compared when sorting.
// Scores equal in exact arithmetic can differ in the last bits depending on
// summation order and token counts; they must still sort as ties.
const tieScale = 1e12

// Document is a caller-identified piece of text.
type Document[K comparable] struct {
	ID   K
	Text string
}

// Result is the similarity of one candidate to the query.
type Result[K comparable] struct {
	ID    K
	Score float64
}

// Rank scores every candidate against query and returns the results sorted by
// score, highest first. Equal scores keep the candidates' input order.
// An empty candidate list yields an empty slice.
//
// Ordering compares scores rounded to 1e-12, while the returned Score values
// are not rounded. Two tied results may therefore differ in the last bits, and
// the later one can be a hair larger. Callers that re-sort on raw Score lose
// the input-order tie break; use the returned order instead.
func Rank[K comparable](query string, candidates []Document[K]) []Result[K] {
	results := make([]Result[K], 0, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	tokens := make([][]string, 0, len(candidates)+1)
	tokens = append(tokens, Tokenize(query))
	for _, c := range candidates {
		tokens = append(tokens, Tokenize(c.Text))
	}

	corpus := NewCorpus(tokens)
	queryVec := corpus.Vectorize(tokens[0])

	for i, c := range candidates {
		results = append(results, Result[K]{
			ID:    c.ID,
			Score: CosineSimilarity(queryVec, corpus.Vectorize(tokens[i+1])),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return sortKey(results[i].Score) > sortKey(results[j].Score)
	})

	return results
}

func sortKey(score float64) float64 {
	return math.Round(score*tieScale) / tieScale
}

