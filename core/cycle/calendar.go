package cycle

import "time"

// Cell is the derived state for one day of a calendar month grid.
type Cell struct {
	// Date is the normalized day this cell represents.
	Date time.Time `json:"-"`
	// Key is the YYYY-MM-DD form of Date, used as the stable render key.
	Key string `json:"key"`
	// Day is the day-of-month number.
	Day int `json:"day"`
	// InMonth is false for leading/trailing cells that pad the grid to
	// whole weeks.
	InMonth bool `json:"in_month"`
	// Today marks the cell matching the injected current time.
	Today bool `json:"today"`
	// Phase is the derived cycle phase for this day.
	Phase Phase `json:"phase"`
	// Period marks a day with an explicit period marker logged.
	Period bool `json:"period"`
	// PredictedPeriod marks days of estimated future periods.
	PredictedPeriod bool `json:"predicted_period"`
	// Fertile marks days inside an estimated fertility window.
	Fertile bool `json:"fertile"`
	// Ovulation marks the estimated ovulation day.
	Ovulation bool `json:"ovulation"`
	// HasData is true when any journal data exists for this day.
	HasData bool `json:"has_data"`
}

// BuildMonthCells builds the week-aligned grid of day cells for the month
// containing monthStart. The grid starts on the Sunday on or before the 1st
// and ends on the Saturday on or after the last day, so callers always get
// whole weeks. now is injected so "today" is testable.
func BuildMonthCells(monthStart time.Time, cfg Config, log map[string]Entry, now time.Time) []Cell {
	first := time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	predicted := make(map[string]bool)
	fertile := make(map[string]bool)
	ovulation := make(map[string]bool)
	markPredictions(gridEnd, cfg, log, predicted, fertile, ovulation)

	todayKey := Day(now).Format(DateLayout)

	cells := make([]Cell, 0, 42)
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		entry, hasEntry := log[key]

		cell := Cell{
			Date:            d,
			Key:             key,
			Day:             d.Day(),
			InMonth:         d.Month() == first.Month(),
			Today:           key == todayKey,
			Phase:           ComputePhase(d, cfg, log).Phase,
			Period:          hasEntry && entry.Marker != "",
			PredictedPeriod: predicted[key],
			Fertile:         fertile[key],
			Ovulation:       ovulation[key],
			HasData:         hasEntry && !entry.IsEmpty(),
		}
		if cell.Ovulation {
			// Ovulation styling wins over the plain fertile band.
			cell.Fertile = false
		}
		cells = append(cells, cell)
	}

	return cells
}

// markPredictions fills the prediction maps for every estimated cycle from
// the most recent recorded start through the end of the grid.
func markPredictions(gridEnd time.Time, cfg Config, log map[string]Entry, predicted, fertile, ovulation map[string]bool) {
	anchor, ok := lastStartOnOrBefore(gridEnd, log)
	if !ok {
		return
	}

	cycleLen := cfg.CycleLengthDays
	if cycleLen <= 0 {
		cycleLen = DefaultCycleLength
	}
	periodLen := cfg.PeriodLengthDays
	if periodLen <= 0 {
		periodLen = DefaultPeriodLength
	}

	// The anchor cycle itself contributes its fertility window; future
	// cycles also contribute predicted period days.
	for start := anchor; !start.After(gridEnd); start = start.AddDate(0, 0, cycleLen) {
		if !start.Equal(anchor) {
			for offset := 0; offset < periodLen; offset++ {
				predicted[start.AddDate(0, 0, offset).Format(DateLayout)] = true
			}
		}

		ov, fs, fe, ok := PredictWindow(start, cycleLen)
		if !ok {
			continue
		}
		ovulation[ov.Format(DateLayout)] = true
		for d := fs; !d.After(fe); d = d.AddDate(0, 0, 1) {
			fertile[d.Format(DateLayout)] = true
		}
	}
}
