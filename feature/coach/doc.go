// Package coach implements the AI wellness coach feature.
//
// Replies come from Google's Gemini API. Every chat turn is seeded with a
// system instruction carrying the user's current cycle phase, so advice is
// phase-aware without the user restating context. When no API key is
// configured the coach stays reachable and answers with a fixed
// not-configured reply instead of calling out.
//
// # HTTP Endpoints
//
//   - POST /coach/chat : one chat turn (message plus prior history)
package coach
