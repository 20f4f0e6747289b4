package cycle

import "time"

// minPredictableCycle is the shortest cycle length for which the ovulation
// estimate is meaningful.
const minPredictableCycle = 21

// PredictWindow estimates the ovulation date and fertility window for a
// cycle starting at cycleStart. The ovulation day is the midpoint used by
// ComputePhase (round(cycleLength/2)); the fertility window spans the five
// days before ovulation through the day after, reflecting sperm viability
// and egg lifetime. Returns ok=false when the cycle length is too short to
// estimate.
func PredictWindow(cycleStart time.Time, cycleLengthDays int) (ovulation, fertileStart, fertileEnd time.Time, ok bool) {
	if cycleLengthDays < minPredictableCycle {
		return time.Time{}, time.Time{}, time.Time{}, false
	}

	start := Day(cycleStart)
	mid := (cycleLengthDays + 1) / 2 // round(cycleLength/2) for integers

	ovulation = start.AddDate(0, 0, mid-1)
	fertileStart = ovulation.AddDate(0, 0, -5)
	fertileEnd = ovulation.AddDate(0, 0, 1)
	return ovulation, fertileStart, fertileEnd, true
}

// NextPeriodStart estimates the next period start after the most recent
// recorded start on or before ref. Returns ok=false when the log holds no
// anchor.
func NextPeriodStart(ref time.Time, cfg Config, log map[string]Entry) (time.Time, bool) {
	anchor, ok := lastStartOnOrBefore(ref, log)
	if !ok {
		return time.Time{}, false
	}

	length := cfg.CycleLengthDays
	if length <= 0 {
		length = DefaultCycleLength
	}

	// Roll forward past ref in case the anchor is several cycles old.
	next := anchor.AddDate(0, 0, length)
	for !next.After(Day(ref)) {
		next = next.AddDate(0, 0, length)
	}
	return next, true
}
