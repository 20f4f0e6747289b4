package journal

import (
	"context"
	"testing"

	"bloom/core/cycle"
	"bloom/core/database"
	"bloom/core/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *kv.Store) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	settings, err := kv.NewStore(db)
	require.NoError(t, err)
	svc, err := NewService(db, settings, zap.NewNop())
	require.NoError(t, err)
	return svc, settings
}

func TestService_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	entry := cycle.Entry{
		Marker:   cycle.MarkerStart,
		Symptoms: []string{"cramps", "headache"},
		Mood:     "tired",
		Notes:    "rough morning",
	}
	require.NoError(t, svc.Upsert(ctx, "2025-03-01", entry))

	got, found, err := svc.Get(ctx, "2025-03-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry, got)

	_, found, err = svc.Get(ctx, "2025-03-02")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_LaterWritesOverwrite(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Upsert(ctx, "2025-03-01", cycle.Entry{Mood: "tired"}))
	require.NoError(t, svc.Upsert(ctx, "2025-03-01", cycle.Entry{Mood: "energetic", Notes: "better now"}))

	got, found, err := svc.Get(ctx, "2025-03-01")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "energetic", got.Mood)
	assert.Equal(t, "better now", got.Notes)

	// Still exactly one row for the date.
	log, err := svc.Log(ctx)
	require.NoError(t, err)
	assert.Len(t, log, 1)
}

func TestService_EmptyEntryIsDeleted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Upsert(ctx, "2025-03-01", cycle.Entry{Mood: "ok"}))
	require.NoError(t, svc.Upsert(ctx, "2025-03-01", cycle.Entry{}))

	_, found, err := svc.Get(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	assert.Error(t, svc.Upsert(ctx, "03/01/2025", cycle.Entry{Mood: "ok"}))
	assert.Error(t, svc.Upsert(ctx, "2025-03-01", cycle.Entry{Marker: "heavy"}))
}

func TestService_Range(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, date := range []string{"2025-02-27", "2025-03-01", "2025-03-15", "2025-04-01"} {
		require.NoError(t, svc.Upsert(ctx, date, cycle.Entry{Mood: "ok"}))
	}

	log, err := svc.Range(ctx, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Len(t, log, 2)
	assert.Contains(t, log, "2025-03-01")
	assert.Contains(t, log, "2025-03-15")
}

func TestService_CycleConfigRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Missing value falls back to defaults.
	assert.Equal(t, cycle.DefaultConfig(), svc.CycleConfig(ctx))

	custom := cycle.Config{CycleLengthDays: 30, PeriodLengthDays: 6}
	require.NoError(t, svc.SetCycleConfig(ctx, custom))
	assert.Equal(t, custom, svc.CycleConfig(ctx))

	assert.Error(t, svc.SetCycleConfig(ctx, cycle.Config{CycleLengthDays: 0, PeriodLengthDays: 5}))
}

func TestService_CorruptedConfigIsCleared(t *testing.T) {
	ctx := context.Background()
	svc, settings := newTestService(t)

	require.NoError(t, settings.Set(ctx, ConfigKey, "{not json"))
	assert.Equal(t, cycle.DefaultConfig(), svc.CycleConfig(ctx))

	// The corrupted value must be gone, not just ignored.
	_, found, err := settings.Get(ctx, ConfigKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_PhaseFor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	info, err := svc.PhaseFor(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, cycle.PhaseUnknown, info.Phase)

	require.NoError(t, svc.Upsert(ctx, "2025-03-01", cycle.Entry{Marker: cycle.MarkerStart}))

	info, err = svc.PhaseFor(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, cycle.PhaseFollicular, info.Phase)
	assert.Equal(t, 10, info.DayOfCycle)

	_, err = svc.PhaseFor(ctx, "bad-date")
	assert.Error(t, err)
}
