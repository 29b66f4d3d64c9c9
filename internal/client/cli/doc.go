// Package cli provides the interactive notekeeper command-line client.
//
// It wires configuration, the HTTP API client and an interactive REPL.
// Typical flow: start a background connectivity watcher, prompt for
// credentials when the user types "login", then manage notes.
//
// Key features:
//   - Signup / Login / Logout
//   - List, add, edit and delete notes
//   - Online/offline indicator in the prompt
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
