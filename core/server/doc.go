// Package server holds the HTTP server configuration.
//
// The main application entry point handles server startup; this package only
// defines the configuration structure shared between the config loader and
// the middleware (listen port and the optional API key).
//
// When no API key is configured the service runs in open local mode, which
// is the expected setup for a single-user installation on a personal
// machine.
package server
