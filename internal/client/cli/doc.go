// Package cli provides the interactive Mindful command-line client.
//
// It wires configuration, the local mirror database, the remote gateway and
// the sync engine into an interactive REPL. The session is restored from the
// mirror at startup, so a logged-in identity survives restarts.
//
// Key features:
//   - Login / Signup / Logout
//   - List, add, toggle, edit and remove reminders
//   - User administration for the admin account
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
