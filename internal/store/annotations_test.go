package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblabel-engine/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func annotated(id, exp, cat string) domain.AnnotatedRecord {
	return domain.AnnotatedRecord{
		CleanRecord: domain.CleanRecord{
			ID:          id,
			Title:       "Engineer",
			Company:     "Acme",
			Description: "some long normalized description for " + id,
			Source:      domain.SourcePrimary,
		},
		Experience: domain.Annotation{Label: exp, Confidence: 0.8},
		Category:   domain.Annotation{Label: cat, Confidence: 0.6},
		Education:  domain.Annotation{Label: "none", Confidence: 0},
		Remote:     domain.Annotation{Label: "yes", Confidence: 1},
	}
}

func TestInsertIfNew(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	added, err := InsertIfNew(ctx, db.Pool, annotated("r1", "senior", "backend"))
	require.NoError(t, err)
	assert.True(t, added)

	// same record id is a no-op
	added, err = InsertIfNew(ctx, db.Pool, annotated("r1", "senior", "backend"))
	require.NoError(t, err)
	assert.False(t, added)

	added, err = InsertIfNew(ctx, db.Pool, annotated("r2", "entry", "frontend"))
	require.NoError(t, err)
	assert.True(t, added)
}

func TestListAnnotated(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for _, rec := range []domain.AnnotatedRecord{
		annotated("r1", "senior", "backend"),
		annotated("r2", "entry", "frontend"),
		annotated("r3", "senior", "devops"),
	} {
		_, err := InsertIfNew(ctx, db.Pool, rec)
		require.NoError(t, err)
	}

	all, err := ListAnnotated(ctx, db.Pool, ListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "r1", all[0].ID) // insertion order
	assert.Equal(t, domain.SourcePrimary, all[0].Source)
	assert.Equal(t, 0.8, all[0].Experience.Confidence)

	seniors, err := ListAnnotated(ctx, db.Pool, ListOpts{Experience: "senior"})
	require.NoError(t, err)
	assert.Len(t, seniors, 2)

	limited, err := ListAnnotated(ctx, db.Pool, ListOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "r1", limited[0].ID)

	none, err := ListAnnotated(ctx, db.Pool, ListOpts{Experience: "senior", Category: "frontend"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
