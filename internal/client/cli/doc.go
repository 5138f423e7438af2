// Package cli provides the interactive SessionKeeper command-line client.
//
// It wires configuration, the durable session cache, the REST client and an
// interactive REPL. Typical flow: restore any cached session on startup,
// then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout against the remote account service
//   - Profile view and edit with background enrichment
//   - Paged browsing of the user listing
//   - Account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
