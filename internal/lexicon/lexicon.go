package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Axis is one of the four independent label dimensions.
type Axis string

const (
	AxisExperience Axis = "experience"
	AxisCategory   Axis = "category"
	AxisEducation  Axis = "education"
	AxisRemote     Axis = "remote"
)

// Axes returns every axis in a fixed order so iteration stays deterministic.
func Axes() []Axis {
	return []Axis{AxisExperience, AxisCategory, AxisEducation, AxisRemote}
}

// Keyword is a single piece of weighted evidence for a label.
type Keyword struct {
	Pattern string  `yaml:"pattern"`
	Weight  float64 `yaml:"weight"`
}

// Lexicon maps axis -> label -> weighted keyword set, plus the default
// label each axis falls back to when scoring finds no winner. It is a
// pure data artifact loaded once and treated as immutable afterwards.
type Lexicon struct {
	Defaults map[Axis]string               `yaml:"defaults"`
	Axes     map[Axis]map[string][]Keyword `yaml:"axes"`
}

// Load reads and validates a lexicon YAML file. Any error here is
// fatal to the caller: annotation cannot proceed on a partial lexicon.
func Load(path string) (*Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates lexicon YAML.
func Parse(b []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(b, &lex); err != nil {
		return nil, fmt.Errorf("lexicon parse: %w", err)
	}
	if err := lex.normalize(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// normalize trims and lowercases patterns (scoring runs on normalized
// text) and rejects incomplete axes up front.
func (l *Lexicon) normalize() error {
	if l.Axes == nil {
		return fmt.Errorf("lexicon: no axes defined")
	}
	for _, axis := range Axes() {
		labels, ok := l.Axes[axis]
		if !ok || len(labels) == 0 {
			return fmt.Errorf("lexicon: axis %q has no labels", axis)
		}
		for label, kws := range labels {
			if strings.TrimSpace(label) == "" {
				return fmt.Errorf("lexicon: axis %q has an empty label name", axis)
			}
			if len(kws) == 0 {
				return fmt.Errorf("lexicon: axis %q label %q has no keywords", axis, label)
			}
			for i, kw := range kws {
				p := strings.ToLower(strings.TrimSpace(kw.Pattern))
				if p == "" {
					return fmt.Errorf("lexicon: axis %q label %q keyword %d has empty pattern", axis, label, i)
				}
				if kw.Weight <= 0 {
					return fmt.Errorf("lexicon: axis %q label %q pattern %q has non-positive weight %v", axis, label, kw.Pattern, kw.Weight)
				}
				kws[i].Pattern = p
			}
		}

		def, ok := l.Defaults[axis]
		if !ok || strings.TrimSpace(def) == "" {
			return fmt.Errorf("lexicon: axis %q has no default label", axis)
		}
		if _, ok := labels[def]; !ok {
			return fmt.Errorf("lexicon: axis %q default %q is not one of its labels", axis, def)
		}
	}
	return nil
}

// Labels returns the axis's label names sorted alphabetically.
func (l *Lexicon) Labels(axis Axis) []string {
	out := make([]string, 0, len(l.Axes[axis]))
	for label := range l.Axes[axis] {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Keywords returns the weighted keyword set for one (axis, label) pair.
func (l *Lexicon) Keywords(axis Axis, label string) []Keyword {
	return l.Axes[axis][label]
}

// Default returns the configured fallback label for an axis.
func (l *Lexicon) Default(axis Axis) string {
	return l.Defaults[axis]
}
