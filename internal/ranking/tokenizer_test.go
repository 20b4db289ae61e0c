package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "separators only",
			input: "  !! -- ,, ",
			want:  nil,
		},
		{
			name:  "single chars dropped",
			input: "a b c real token",
			want:  []string{"real", "token"},
		},
		{
			name:  "lowercased and punctuation split",
			input: "Looking for a software engineer with Python skills.",
			want:  []string{"looking", "for", "software", "engineer", "with", "python", "skills"},
		},
		{
			name:  "underscore and digits are word characters",
			input: "snake_case v2 node.js C++ 42",
			want:  []string{"snake_case", "v2", "node", "js", "42"},
		},
		{
			name:  "hyphen separates",
			input: "full-stack engineer",
			want:  []string{"full", "stack", "engineer"},
		},
		{
			name:  "unicode letters",
			input: "Stra\u00dfe \u043f\u0440\u0438\u0432\u0435\u0442 \u00e9",
			want:  []string{"stra\u00dfe", "\u043f\u0440\u0438\u0432\u0435\u0442"},
		},
		{
			name:  "repeats kept",
			input: "go go gopher",
			want:  []string{"go", "go", "gopher"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input), "Tokenize(%q)", tt.input)
		})
	}
}

func TestTermFrequency(t *testing.T) {
	tf := TermFrequency([]string{"go", "python", "go", "rust"})

	assert.Equal(t, 0.5, tf["go"])
	assert.Equal(t, 0.25, tf["python"])
	assert.Equal(t, 0.25, tf["rust"])
}

func TestTermFrequencyEmpty(t *testing.T) {
	assert.Empty(t, TermFrequency(nil))
}
