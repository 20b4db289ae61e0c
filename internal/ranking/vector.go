package ranking

import (
	"math"
	"sort"
)

// Term is one dimension of a Vector.
type Term struct {
	Word   string
	Weight float64
}

// Vector holds the non-absent dimensions of a document, ordered by Word so
// two vectors can be compared in a single pass.
type Vector []Term

// NewVector orders weights by word. Zero and negative weights are kept.
func NewVector(weights map[string]float64) Vector {
	if len(weights) == 0 {
		return nil
	}
	v := make(Vector, 0, len(weights))
	for word, w := range weights {
		v = append(v, Term{Word: word, Weight: w})
	}
	sort.Slice(v, func(i, j int) bool {
		return v[i].Word < v[j].Word
	})
	return v
}

// Weight returns the weight of word, or 0 when the dimension is absent.
func (v Vector) Weight(word string) float64 {
	i := sort.Search(len(v), func(i int) bool { return v[i].Word >= word })
	if i < len(v) && v[i].Word == word {
		return v[i].Weight
	}
	return 0
}

// CosineSimilarity walks a and b side by side. Words present in both feed the
// dot product, every word feeds its own vector's norm. The walk order is fixed
// by the word order, so equal inputs always give bit-equal results.
// A zero norm on either side gives 0.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].Word == b[j].Word:
			dot += a[i].Weight * b[j].Weight
			normA += a[i].Weight * a[i].Weight
			normB += b[j].Weight * b[j].Weight
			i++
			j++
		case a[i].Word < b[j].Word:
			normA += a[i].Weight * a[i].Weight
			i++
		default:
			normB += b[j].Weight * b[j].Weight
			j++
		}
	}

	for ; i < len(a); i++ {
		normA += a[i].Weight * a[i].Weight
	}
	for ; j < len(b); j++ {
		normB += b[j].Weight * b[j].Weight
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
