package pipeline

import (
	"log"
	"strings"

	"joblabel-engine/internal/annotate"
	"joblabel-engine/internal/clean"
	"joblabel-engine/internal/domain"
	"joblabel-engine/internal/lexicon"
)

// MinDescriptionTokens is the quality gate: cleaned descriptions with
// fewer whitespace tokens than this are dropped, not kept degraded.
const MinDescriptionTokens = 30

// Stats counts what happened to the batch. Per-record drops are
// recovered locally; nothing here ever aborts the run.
type Stats struct {
	Collected    int
	Malformed    int
	BelowQuality int
	Duplicates   int
	Kept         int
}

// ProcessBatch is the single entry point of the labeling core:
// normalize -> quality filter -> dedupe -> annotate. Output order
// follows input order after deduplication, so identical input and
// lexicon always produce identical output.
func ProcessBatch(raw []domain.RawRecord, lex *lexicon.Lexicon) ([]domain.AnnotatedRecord, Stats) {
	st := Stats{Collected: len(raw)}

	cleaned := make([]domain.CleanRecord, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Description) == "" {
			st.Malformed++
			log.Printf("[pipeline] skipped (malformed) id=%q source=%s", r.ID, r.Source)
			continue
		}

		desc := clean.Normalize(r.Description)
		if clean.TokenCount(desc) < MinDescriptionTokens {
			st.BelowQuality++
			log.Printf("[pipeline] skipped (below_quality) id=%q tokens=%d", r.ID, clean.TokenCount(desc))
			continue
		}

		cleaned = append(cleaned, domain.CleanRecord{
			ID:          strings.TrimSpace(r.ID),
			Title:       strings.TrimSpace(r.Title),
			Description: desc,
			Company:     strings.TrimSpace(r.Company),
			Source:      r.Source,
		})
	}

	kept := clean.Dedupe(cleaned)
	st.Duplicates = len(cleaned) - len(kept)

	ann := annotate.New(lex)
	out := make([]domain.AnnotatedRecord, 0, len(kept))
	for _, rec := range kept {
		out = append(out, ann.Annotate(rec))
	}
	st.Kept = len(out)

	return out, st
}
