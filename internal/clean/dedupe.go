package clean

import "joblabel-engine/internal/domain"

// Dedupe keeps the first record for each normalized description and
// drops later exact matches. Order of survivors follows input order.
func Dedupe(records []domain.CleanRecord) []domain.CleanRecord {
	seen := make(map[string]bool, len(records))
	out := make([]domain.CleanRecord, 0, len(records))
	for _, r := range records {
		if seen[r.Description] {
			continue
		}
		seen[r.Description] = true
		out = append(out, r)
	}
	return out
}
