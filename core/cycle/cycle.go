package cycle

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the canonical day-precision date format used for log keys.
const DateLayout = "2006-01-02"

// Default cycle configuration, used when the user has not set their own.
const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// Phase is a named stage of the reproductive cycle.
type Phase string

const (
	PhaseMenstruation Phase = "menstruation"
	PhaseFollicular   Phase = "follicular"
	PhaseOvulation    Phase = "ovulation"
	PhaseLuteal       Phase = "luteal"
	PhaseUnknown      Phase = "unknown"
)

// Marker is an explicit period annotation on a log entry.
type Marker string

const (
	MarkerStart Marker = "start"
	MarkerFlow  Marker = "flow"
	MarkerEnd   Marker = "end"
)

// IsValid reports whether m is one of the known markers or empty.
func (m Marker) IsValid() bool {
	switch m {
	case "", MarkerStart, MarkerFlow, MarkerEnd:
		return true
	default:
		return false
	}
}

// Config holds the per-user cycle configuration. PeriodLengthDays is
// expected to be at most CycleLengthDays but this is not enforced.
type Config struct {
	// CycleLengthDays is the average full cycle length in days.
	CycleLengthDays int `json:"cycle_length_days"`
	// PeriodLengthDays is the average period length in days.
	PeriodLengthDays int `json:"period_length_days"`
}

// DefaultConfig returns the configuration used when none is stored.
func DefaultConfig() Config {
	return Config{CycleLengthDays: DefaultCycleLength, PeriodLengthDays: DefaultPeriodLength}
}

// Entry is one day's journal data, keyed by its YYYY-MM-DD date. Later
// writes for the same date overwrite earlier ones.
type Entry struct {
	// Marker is the optional explicit period annotation.
	Marker Marker `json:"marker,omitempty"`
	// Symptoms is the set of symptom tags logged for the day.
	Symptoms []string `json:"symptoms,omitempty"`
	// Mood is the optional mood tag.
	Mood string `json:"mood,omitempty"`
	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
}

// IsEmpty reports whether the entry carries no data at all. Empty entries
// are not retained by the journal.
func (e Entry) IsEmpty() bool {
	return e.Marker == "" && len(e.Symptoms) == 0 && e.Mood == "" && e.Notes == ""
}

// PhaseInfo is the derived phase for a single target date. It is never
// stored; it is always recomputed from the log history and configuration.
type PhaseInfo struct {
	// Phase is the derived cycle phase.
	Phase Phase `json:"phase"`
	// DayOfCycle is the 1-indexed day since the most recent recorded period
	// start. Zero when the phase is unknown.
	DayOfCycle int `json:"day_of_cycle,omitempty"`
}

// ParseDate parses a YYYY-MM-DD string into a normalized day-precision
// time. Malformed dates are rejected here, at the boundary, so the
// calculator itself never sees one.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Day normalizes a time to day precision in UTC so that whole-day
// arithmetic is exact regardless of the source location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference to - from.
func daysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)) / (24 * time.Hour))
}

// ComputePhase derives the phase and day of cycle for target from the log
// history and configuration. Pure: same inputs always produce the same
// output, and it never fails.
func ComputePhase(target time.Time, cfg Config, log map[string]Entry) PhaseInfo {
	unknown := PhaseInfo{Phase: PhaseUnknown}

	// The most recent recorded start on or before target anchors day 1.
	// Without an anchor there is nothing to estimate from.
	anchor, ok := lastStartOnOrBefore(target, log)
	if !ok {
		return unknown
	}

	day := daysBetween(anchor, target) + 1
	if day <= 0 {
		return unknown
	}

	// An explicit marker on the target date overrides the estimate.
	if entry, ok := log[Day(target).Format(DateLayout)]; ok && entry.Marker != "" {
		return PhaseInfo{Phase: PhaseMenstruation, DayOfCycle: day}
	}

	mid := int(math.Round(float64(cfg.CycleLengthDays) / 2))
	ovulationStart := mid - 2
	ovulationEnd := mid + 2

	switch {
	case day <= cfg.PeriodLengthDays:
		return PhaseInfo{Phase: PhaseMenstruation, DayOfCycle: day}
	case day <= ovulationStart:
		return PhaseInfo{Phase: PhaseFollicular, DayOfCycle: day}
	case day <= ovulationEnd:
		return PhaseInfo{Phase: PhaseOvulation, DayOfCycle: day}
	case day <= cfg.CycleLengthDays:
		return PhaseInfo{Phase: PhaseLuteal, DayOfCycle: day}
	default:
		// The cycle has overrun the configured length without a new
		// recorded start.
		return unknown
	}
}

// lastStartOnOrBefore finds the most recent date on or before target whose
// entry is marked as a period start. Comparison is by calendar value, not
// insertion order.
func lastStartOnOrBefore(target time.Time, log map[string]Entry) (time.Time, bool) {
	targetDay := Day(target)

	var best time.Time
	found := false
	for key, entry := range log {
		if entry.Marker != MarkerStart {
			continue
		}
		d, err := ParseDate(key)
		if err != nil {
			// Malformed keys should have been rejected at the boundary;
			// skip rather than poison the result.
			continue
		}
		if d.After(targetDay) {
			continue
		}
		if !found || d.After(best) {
			best = d
			found = true
		}
	}
	return best, found
}
