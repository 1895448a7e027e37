package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Messages: []models.Message{
			{ID: "m1", Role: models.RoleUser, Content: "Documents for France?", CreatedAt: time.Now().UTC()},
			{ID: "m2", Role: models.RoleAssistant, Content: "You will need...", CreatedAt: time.Now().UTC()},
		},
		Durations: map[string]int64{"m2": 1200},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	st, err := New(DriverMemory)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(ctx, "default", sampleSnapshot()))

	snap, err := st.Load(ctx, "default")
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 2)
	assert.Equal(t, int64(1200), snap.Durations["m2"])
}

func TestMemoryStoreMissingKeyIsEmpty(t *testing.T) {
	st, err := New(DriverMemory)
	require.NoError(t, err)
	defer st.Close()

	snap, err := st.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, snap.Messages)
	assert.Empty(t, snap.Durations)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	st, err := New(DriverSQLite, WithSQLitePath(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(ctx, "default", sampleSnapshot()))

	snap, err := st.Load(ctx, "default")
	require.NoError(t, err)
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, models.RoleUser, snap.Messages[0].Role)
	assert.Equal(t, int64(1200), snap.Durations["m2"])
}

func TestSQLiteStoreOverwritesSameKey(t *testing.T) {
	ctx := context.Background()

	st, err := New(DriverSQLite, WithSQLitePath(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(ctx, "default", sampleSnapshot()))
	require.NoError(t, st.Save(ctx, "default", &models.Snapshot{
		Messages:  []models.Message{},
		Durations: map[string]int64{},
	}))

	snap, err := st.Load(ctx, "default")
	require.NoError(t, err)
	assert.Empty(t, snap.Messages)
	assert.Empty(t, snap.Durations)
}

func TestSQLiteStoreCorruptSnapshotIsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := New(DriverSQLite, WithSQLitePath(path))
	require.NoError(t, err)
	defer st.Close()

	_, err = st.(*sqliteStore).db.ExecContext(ctx,
		"INSERT INTO sessions (key, snapshot) VALUES (?, ?)", "default", "{not json")
	require.NoError(t, err)

	snap, err := st.Load(ctx, "default")
	require.NoError(t, err)
	assert.Empty(t, snap.Messages)
	assert.Empty(t, snap.Durations)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(DriverSQLite)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(DriverRedis)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Driver("bolt"))
	assert.ErrorIs(t, err, ErrInvalidDriver)
}
