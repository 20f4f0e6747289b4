package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellByKey(t *testing.T, cells []Cell, key string) Cell {
	t.Helper()
	for _, c := range cells {
		if c.Key == key {
			return c
		}
	}
	t.Fatalf("no cell for %s", key)
	return Cell{}
}

func TestBuildMonthCells_GridIsWeekAligned(t *testing.T) {
	cfg := DefaultConfig()

	// March 2025 starts on a Saturday and ends on a Monday: the grid runs
	// from Sunday Feb 23 through Saturday Apr 5, six whole weeks.
	cells := BuildMonthCells(date(t, "2025-03-15"), cfg, nil, date(t, "2025-03-15"))
	require.Len(t, cells, 42)
	assert.Equal(t, "2025-02-23", cells[0].Key)
	assert.Equal(t, "2025-04-05", cells[len(cells)-1].Key)

	assert.False(t, cellByKey(t, cells, "2025-02-28").InMonth)
	assert.True(t, cellByKey(t, cells, "2025-03-01").InMonth)
	assert.True(t, cellByKey(t, cells, "2025-03-31").InMonth)
	assert.False(t, cellByKey(t, cells, "2025-04-01").InMonth)

	today := cellByKey(t, cells, "2025-03-15")
	assert.True(t, today.Today)
}

func TestBuildMonthCells_RowCountFollowsMonthShape(t *testing.T) {
	cfg := DefaultConfig()

	// February 2026 starts on a Sunday and has exactly 28 days, so the grid
	// collapses to four rows with no padding at all.
	cells := BuildMonthCells(date(t, "2026-02-01"), cfg, nil, date(t, "2026-02-01"))
	require.Len(t, cells, 28)
	assert.Equal(t, "2026-02-01", cells[0].Key)
	assert.Equal(t, "2026-02-28", cells[len(cells)-1].Key)
	for _, c := range cells {
		assert.True(t, c.InMonth)
	}

	// August 2026 starts on a Saturday and runs 31 days, needing the full
	// six rows.
	cells = BuildMonthCells(date(t, "2026-08-01"), cfg, nil, date(t, "2026-08-01"))
	require.Len(t, cells, 42)
	assert.Equal(t, "2026-07-26", cells[0].Key)
	assert.Equal(t, "2026-09-05", cells[len(cells)-1].Key)
}

func TestBuildMonthCells_PhaseAndMarkers(t *testing.T) {
	cfg := Config{CycleLengthDays: 28, PeriodLengthDays: 5}
	log := map[string]Entry{
		"2025-03-01": {Marker: MarkerStart},
		"2025-03-02": {Marker: MarkerFlow},
		"2025-03-10": {Symptoms: []string{"headache"}},
	}

	cells := BuildMonthCells(date(t, "2025-03-01"), cfg, log, date(t, "2025-03-10"))

	start := cellByKey(t, cells, "2025-03-01")
	assert.True(t, start.Period)
	assert.True(t, start.HasData)
	assert.Equal(t, PhaseMenstruation, start.Phase)

	symptomDay := cellByKey(t, cells, "2025-03-10")
	assert.False(t, symptomDay.Period)
	assert.True(t, symptomDay.HasData)
	assert.Equal(t, PhaseFollicular, symptomDay.Phase)

	// Days before the anchor have no phase information.
	assert.Equal(t, PhaseUnknown, cellByKey(t, cells, "2025-02-27").Phase)
}

func TestBuildMonthCells_Predictions(t *testing.T) {
	cfg := Config{CycleLengthDays: 28, PeriodLengthDays: 5}
	log := map[string]Entry{"2025-03-01": {Marker: MarkerStart}}

	cells := BuildMonthCells(date(t, "2025-03-01"), cfg, log, date(t, "2025-03-05"))

	// Ovulation estimate for the anchor cycle: day 14.
	ov := cellByKey(t, cells, "2025-03-14")
	assert.True(t, ov.Ovulation)
	assert.False(t, ov.Fertile, "ovulation styling wins over the fertile band")
	assert.True(t, cellByKey(t, cells, "2025-03-09").Fertile)
	assert.True(t, cellByKey(t, cells, "2025-03-15").Fertile)

	// Next predicted period: Mar 29 through Apr 2.
	assert.True(t, cellByKey(t, cells, "2025-03-29").PredictedPeriod)
	assert.True(t, cellByKey(t, cells, "2025-04-02").PredictedPeriod)
	assert.False(t, cellByKey(t, cells, "2025-03-28").PredictedPeriod)

	// The anchor cycle's recorded period is not "predicted".
	assert.False(t, cellByKey(t, cells, "2025-03-01").PredictedPeriod)
}

func TestBuildMonthCells_NoLogsNoPredictions(t *testing.T) {
	cells := BuildMonthCells(date(t, "2025-03-01"), DefaultConfig(), nil, date(t, "2025-03-05"))
	for _, c := range cells {
		assert.Equal(t, PhaseUnknown, c.Phase)
		assert.False(t, c.PredictedPeriod)
		assert.False(t, c.Fertile)
		assert.False(t, c.Ovulation)
		assert.False(t, c.HasData)
	}
}
