// Package scheduling picks the interviewer for a job and the interview slot.
package scheduling

// Holder is a caller-identified list of skills, e.g. an expert.
type Holder[K comparable] struct {
	ID     K
	Skills []string
}

// Select returns the id of the holder sharing the most skills with target.
// Among equal overlaps the earliest holder wins, and a holder with no shared
// skills is still chosen when nothing better exists. The boolean is false only
// when candidates is empty; no id is invented in that case.
func Select[K comparable](target []string, candidates []Holder[K]) (K, bool) {
	var best K
	if len(candidates) == 0 {
		return best, false
	}

	targetSet := NewSkillSet(target)
	bestScore := -1
	for _, c := range candidates {
		score := targetSet.Overlap(NewSkillSet(c.Skills))
		if score > bestScore {
			bestScore = score
			best = c.ID
		}
	}

	return best, true
}
