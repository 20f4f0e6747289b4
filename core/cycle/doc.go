// Package cycle computes menstrual-cycle phase information from dated
// journal entries and a per-user cycle configuration.
//
// The central operation is ComputePhase, a pure function: given a target
// date, the configuration and the log history it derives which phase the
// date falls into and the 1-indexed day of cycle. It never fails; when no
// recorded period start anchors the computation, or the cycle has overrun
// the configured length, it degrades to PhaseUnknown rather than guessing.
//
// An explicit period marker logged on the target date always wins over the
// day-count estimate: cycle length varies between individuals and between
// cycles, so user data beats statistical inference.
//
// The package also provides prediction helpers (next expected period start,
// ovulation date, fertility window) and a calendar grid builder used by the
// calendar feature. All functions are deterministic and side-effect free;
// callers inject the current time where "today" matters.
package cycle
