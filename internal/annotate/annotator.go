package annotate

import (
	"joblabel-engine/internal/domain"
	"joblabel-engine/internal/lexicon"
)

// Annotator applies the lexicon across all four axes and emits a
// labeled record. It never fails on a well-formed CleanRecord; records
// with no matching evidence just land on the configured defaults.
type Annotator struct {
	Lex    *lexicon.Lexicon
	scorer Scorer
}

func New(lex *lexicon.Lexicon) Annotator {
	return Annotator{Lex: lex, scorer: Scorer{Lex: lex}}
}

// Annotate labels one record. Per axis: strict-max score wins with
// confidence = winning score / sum of all scores; a tie for the max or
// an all-zero axis falls back to the axis default at confidence 0.0.
func (a Annotator) Annotate(rec domain.CleanRecord) domain.AnnotatedRecord {
	return domain.AnnotatedRecord{
		CleanRecord: rec,
		Experience:  a.annotateAxis(rec.Description, lexicon.AxisExperience),
		Category:    a.annotateAxis(rec.Description, lexicon.AxisCategory),
		Education:   a.annotateAxis(rec.Description, lexicon.AxisEducation),
		Remote:      a.annotateAxis(rec.Description, lexicon.AxisRemote),
	}
}

func (a Annotator) annotateAxis(text string, axis lexicon.Axis) domain.Annotation {
	scores := a.scorer.Score(text, axis)

	var winner string
	var best, total float64
	tied := false
	for _, label := range a.Lex.Labels(axis) {
		sc := scores[label]
		total += sc
		switch {
		case sc > best:
			best, winner, tied = sc, label, false
		case sc == best && sc > 0:
			tied = true
		}
	}

	if best == 0 || tied {
		return domain.Annotation{Label: a.Lex.Default(axis), Confidence: 0.0}
	}
	return domain.Annotation{Label: winner, Confidence: best / total}
}
