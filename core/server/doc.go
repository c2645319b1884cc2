// Package server holds configuration for the HTTP server.
//
// The actual Fiber application is assembled in cmd/start.go; this package only
// defines the settings (port, API key) consumed there and by the auth middleware.
package server
