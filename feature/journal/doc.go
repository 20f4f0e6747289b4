// Package journal implements the daily wellness log feature.
//
// A journal entry is keyed by its calendar date (YYYY-MM-DD, unique; later
// writes overwrite earlier ones) and carries an optional period marker
// (start|flow|end), symptom tags, an optional mood tag and free-text notes.
// Submitting an entry with none of those deletes it: empty entries are not
// retained.
//
// The feature also owns the per-user cycle configuration, persisted as JSON
// in the key-value store. A corrupted stored value is treated as "no data":
// the key is cleared and defaults apply.
//
// # Components
//
//   - Service: entry upsert/lookup, cycle configuration, phase derivation.
//   - Handler: HTTP endpoints for entries, configuration and phase queries.
//   - Feature: registers the module with the application loader.
//
// # HTTP Endpoints
//
//   - GET    /journal?from=&to=     : entries in a date range
//   - GET    /journal/config        : cycle configuration
//   - PUT    /journal/config        : update cycle configuration
//   - GET    /journal/:date         : one entry
//   - PUT    /journal/:date         : create/overwrite (or delete if empty)
//   - GET    /journal/:date/phase   : derived phase info for the date
package journal
