package scheduling

import (
	"sort"
	"strings"
)

// SkillSet is a set of normalized skills.
type SkillSet map[string]struct{}

// NormalizeSkill trims and lowercases a skill.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewSkillSet builds a set from raw skills, dropping entries that are empty
// after normalization.
func NewSkillSet(skills []string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		if n := NormalizeSkill(s); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// SplitSkills splits a comma-separated skills field. Entries are returned
// raw; normalization happens when a SkillSet is built.
func SplitSkills(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

// ParseSkills builds a SkillSet from a comma-separated skills field.
func ParseSkills(csv string) SkillSet {
	return NewSkillSet(SplitSkills(csv))
}

func (s SkillSet) Len() int { return len(s) }

func (s SkillSet) Has(skill string) bool {
	_, ok := s[NormalizeSkill(skill)]
	return ok
}

// Overlap returns the size of the intersection of both sets.
func (s SkillSet) Overlap(other SkillSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for skill := range small {
		if _, ok := large[skill]; ok {
			n++
		}
	}
	return n
}

// Sorted returns the skills in lexical order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Overlap counts the distinct normalized skills shared by a and b.
func Overlap(a, b []string) int {
	return NewSkillSet(a).Overlap(NewSkillSet(b))
}
