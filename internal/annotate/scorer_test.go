package annotate

import (
	"testing"

	"joblabel-engine/internal/lexicon"
)

const testLexiconYAML = `
defaults:
  experience: mid
  category: fullstack
  education: none
  remote: "yes"
axes:
  experience:
    entry: [{pattern: junior, weight: 3}]
    mid: [{pattern: mid-level, weight: 3}]
    senior: [{pattern: senior, weight: 3}, {pattern: 5+ years, weight: 2}]
    lead: [{pattern: principal, weight: 3}]
  category:
    backend: [{pattern: backend, weight: 3}, {pattern: golang, weight: 1}]
    frontend: [{pattern: react, weight: 2}]
    fullstack: [{pattern: full stack, weight: 3}]
    devops: [{pattern: kubernetes, weight: 2}, {pattern: ci/cd, weight: 2}]
    data: [{pattern: etl, weight: 2}]
  education:
    none: [{pattern: no degree, weight: 2}]
    bachelors: [{pattern: bachelor, weight: 3}]
    masters: [{pattern: masters, weight: 3}]
    phd: [{pattern: phd, weight: 3}]
  remote:
    "yes": [{pattern: remote, weight: 3}]
    "no": [{pattern: on-site, weight: 3}]
    hybrid: [{pattern: hybrid, weight: 3}]
`

func testLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex, err := lexicon.Parse([]byte(testLexiconYAML))
	if err != nil {
		t.Fatalf("test lexicon: %v", err)
	}
	return lex
}

func TestScoreEveryLabelPresent(t *testing.T) {
	s := Scorer{Lex: testLexicon(t)}

	scores := s.Score("senior backend engineer", lexicon.AxisCategory)
	if len(scores) != 5 {
		t.Fatalf("got %d labels, want all 5", len(scores))
	}
	if scores["backend"] != 3 {
		t.Errorf("backend = %v, want 3", scores["backend"])
	}
	for _, label := range []string{"frontend", "fullstack", "devops", "data"} {
		if scores[label] != 0 {
			t.Errorf("%s = %v, want 0", label, scores[label])
		}
	}
}

func TestScoreRepeatsCompound(t *testing.T) {
	s := Scorer{Lex: testLexicon(t)}

	scores := s.Score("senior role for a senior engineer, 5+ years", lexicon.AxisExperience)
	// senior x2 (3 each) + "5+ years" x1 (2)
	if scores["senior"] != 8 {
		t.Errorf("senior = %v, want 8", scores["senior"])
	}
}

func TestScorePunctuationPatterns(t *testing.T) {
	s := Scorer{Lex: testLexicon(t)}

	scores := s.Score("we run ci/cd on kubernetes", lexicon.AxisCategory)
	if scores["devops"] != 4 {
		t.Errorf("devops = %v, want 4", scores["devops"])
	}
}

func TestCountOccurrencesBoundaries(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
		want    int
	}{
		{"go developer", "go", 1},
		{"golang developer", "go", 0},   // embedded in a longer word
		{"django apps", "go", 0},        // embedded mid-word
		{"go go go", "go", 3},           // each occurrence counts
		{"use c++ daily", "c++", 1},
		{"c++ at line start", "c++", 1},
		{"ac++ compiler", "c++", 0},     // letter glued to the front
		{"5+ years, remote", "5+ years", 1},
		{"senior.", "senior", 1},        // punctuation is a boundary
		{"", "go", 0},
	}

	for _, tt := range tests {
		if got := countOccurrences(tt.text, tt.pattern); got != tt.want {
			t.Errorf("countOccurrences(%q, %q) = %d, want %d", tt.text, tt.pattern, got, tt.want)
		}
	}
}
