// Package cli provides the interactive veriscan command-line client.
//
// It wires configuration, the local session store, the API client, and an
// interactive REPL. Typical flow: restore the persisted session, then execute
// user commands against the remote verification service.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Verify text, image, and video content
//   - Browse past verifications with filtering, search, and pagination
//   - Dashboard with aggregate statistics and usage insights
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
