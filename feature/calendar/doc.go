// Package calendar implements the cycle calendar feature.
//
// It is the page controller for the month view: it gathers the journal log,
// derives phase information through the cycle calculator, builds the
// week-aligned grid of day cells and paints it through the keyed list
// renderer. The month being viewed is explicit request state (the :month
// path segment); there is no module-level current-month variable.
//
// Painting goes through a render.Session owned by the feature: each month
// gets its own container, so flipping back to an already viewed month reuses
// the existing day-cell fragments instead of re-rendering them. Journal
// writes invalidate the affected month's container.
//
// # HTTP Endpoints
//
//   - GET /calendar/:month : grid cells, today's phase and rendered markup
//     for one month (YYYY-MM).
package calendar
