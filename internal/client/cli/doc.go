// Package cli provides the interactive HomeCal command-line client.
//
// It wires configuration, the file-backed stores, the application
// services, and an interactive REPL gated on the persisted session.
// Typical flow: restore the active session if one exists, then execute
// user commands.
//
// Key features:
//   - Register / Login / Logout against the local user store
//   - Add and remove calendar events (interactive form)
//   - List events with weather annotations
//   - Show the two-week forecast for the configured location
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
