package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func recordRun(t *testing.T, db *DB, project string, score int, quality string) {
	t.Helper()
	snapID, err := db.CreateSnapshot("validate", "test")
	require.NoError(t, err)
	err = db.RecordRun(snapID, ValidationRun{
		Project:           project,
		ScanQuality:       quality,
		CompletenessScore: score,
		ConfigExists:      true,
		LanguageCount:     1,
	})
	require.NoError(t, err)
}

func TestCreateSnapshot_ReturnsSequentialIDs(t *testing.T) {
	db := newTestDB(t)

	first, err := db.CreateSnapshot("validate", "1.0.0")
	require.NoError(t, err)
	second, err := db.CreateSnapshot("watch", "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestRecentRuns_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	recordRun(t, db, "/proj/a", 50, "partial")
	recordRun(t, db, "/proj/b", 80, "full")
	recordRun(t, db, "/proj/a", 90, "full")

	runs, snaps, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.Len(t, snaps, 3)

	assert.Equal(t, "/proj/a", runs[0].Project)
	assert.Equal(t, 90, runs[0].CompletenessScore)
	assert.Equal(t, "/proj/b", runs[1].Project)
	assert.Equal(t, "validate", snaps[0].Command)
	assert.False(t, snaps[0].TakenAt.IsZero())
}

func TestRecentRuns_RespectsLimit(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 5; i++ {
		recordRun(t, db, "/proj/a", 50+i, "partial")
	}

	runs, _, err := db.RecentRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, 54, runs[0].CompletenessScore)
}

func TestRunsForProject_FiltersByProject(t *testing.T) {
	db := newTestDB(t)
	recordRun(t, db, "/proj/a", 50, "partial")
	recordRun(t, db, "/proj/b", 80, "full")

	runs, err := db.RunsForProject("/proj/a", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "/proj/a", runs[0].Project)
}

func TestLatestDelta(t *testing.T) {
	db := newTestDB(t)
	recordRun(t, db, "/proj/a", 40, "partial")

	// A single run has nothing to compare against.
	delta, err := db.LatestDelta("/proj/a")
	require.NoError(t, err)
	assert.Nil(t, delta)

	recordRun(t, db, "/proj/a", 90, "full")

	delta, err = db.LatestDelta("/proj/a")
	require.NoError(t, err)
	require.NotNil(t, delta)
	assert.Equal(t, 40, delta.PreviousScore)
	assert.Equal(t, 90, delta.CurrentScore)
	assert.Equal(t, 50, delta.ScoreDelta)
	assert.Equal(t, "partial", delta.PreviousQuality)
	assert.Equal(t, "full", delta.CurrentQuality)
}

func TestPruneSnapshots_RemovesOldRows(t *testing.T) {
	db := newTestDB(t)
	recordRun(t, db, "/proj/a", 50, "partial")

	// Nothing is older than a cutoff in the past.
	n, err := db.PruneSnapshots(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	// Everything is older than a cutoff in the future.
	n, err = db.PruneSnapshots(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	runs, _, err := db.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestProjectNames_DistinctSorted(t *testing.T) {
	db := newTestDB(t)
	recordRun(t, db, "/proj/b", 50, "partial")
	recordRun(t, db, "/proj/a", 60, "partial")
	recordRun(t, db, "/proj/a", 70, "full")

	names, err := db.ProjectNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"/proj/a", "/proj/b"}, names)
}
