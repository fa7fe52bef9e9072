package domain

// Source identifies which collection lane a record came from.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// RawRecord is a job posting exactly as a collector handed it over.
// Immutable once fetched; the cleaning stage works on copies.
type RawRecord struct {
	ID          string
	Title       string
	Description string
	Company     string
	Source      Source
}

// CleanRecord is a RawRecord whose description passed normalization and
// the quality gate: no markup, lowercase, collapsed whitespace.
type CleanRecord struct {
	ID          string
	Title       string
	Description string
	Company     string
	Source      Source
}

// Annotation is one axis label plus the share of matched evidence
// behind it. Confidence is 0.0 when the label is a tie-break default.
type Annotation struct {
	Label      string
	Confidence float64
}

// AnnotatedRecord is the final labeled posting. Created once per
// CleanRecord by the annotator, never mutated afterwards.
type AnnotatedRecord struct {
	CleanRecord

	Experience Annotation
	Category   Annotation
	Education  Annotation
	Remote     Annotation
}
