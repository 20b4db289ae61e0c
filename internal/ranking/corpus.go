package ranking

import "math"

// Corpus holds document frequencies for the documents of a single ranking
// call. It is built once and only read afterwards.
type Corpus struct {
	docFreq map[string]int
	numDocs int
}

// NewCorpus counts, for every token, the number of documents containing it.
// Repeated tokens within one document count once.
func NewCorpus(documents [][]string) *Corpus {
	docFreq := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			if !seen[t] {
				docFreq[t]++
				seen[t] = true
			}
		}
	}
	return &Corpus{
		docFreq: docFreq,
		numDocs: len(documents),
	}
}

// Len returns the number of documents in the corpus.
func (c *Corpus) Len() int { return c.numDocs }

// DocFreq returns the number of documents containing term.
func (c *Corpus) DocFreq(term string) int { return c.docFreq[term] }

// IDF returns ln(N / (1 + df)). The result is negative for a term present in
// every document; callers must not clamp it.
func (c *Corpus) IDF(term string) float64 {
	return math.Log(float64(c.numDocs) / float64(1+c.docFreq[term]))
}

// Vectorize converts tokens into a TF-IDF vector. Every distinct token keeps a
// dimension, even when its weight is zero or negative.
func (c *Corpus) Vectorize(tokens []string) Vector {
	if len(tokens) == 0 {
		return nil
	}
	tf := TermFrequency(tokens)
	weights := make(map[string]float64, len(tf))
	for term, freq := range tf {
		weights[term] = freq * c.IDF(term)
	}
	return NewVector(weights)
}
