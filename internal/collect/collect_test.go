package collect

import (
	"testing"

	"joblabel-engine/internal/domain"
)

func rr(id string, src domain.Source) domain.RawRecord {
	return domain.RawRecord{ID: id, Title: "t", Description: "d", Source: src}
}

func TestChooseLanePrimaryWins(t *testing.T) {
	out := chooseLane([]domain.RawRecord{
		rr("f1", domain.SourceFallback),
		rr("p1", domain.SourcePrimary),
		rr("f2", domain.SourceFallback),
		rr("p2", domain.SourcePrimary),
	})

	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0].ID != "p1" || out[1].ID != "p2" {
		t.Errorf("got %q,%q, want primary records in order", out[0].ID, out[1].ID)
	}
}

func TestChooseLaneFallbackWhenPrimaryEmpty(t *testing.T) {
	out := chooseLane([]domain.RawRecord{
		rr("f1", domain.SourceFallback),
		rr("f2", domain.SourceFallback),
	})
	if len(out) != 2 || out[0].ID != "f1" {
		t.Errorf("got %+v, want both fallback records", out)
	}
}

func TestChooseLaneEmpty(t *testing.T) {
	if out := chooseLane(nil); len(out) != 0 {
		t.Errorf("got %d records, want 0", len(out))
	}
}
