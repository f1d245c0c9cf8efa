// Package cli provides the interactive atsscan command-line client.
//
// It wires configuration, the local session store, the backend client,
// services, and an interactive REPL. Typical flow: restore the saved
// session, show the landing view, and execute user commands until exit.
//
// Key features:
//   - Signup / Verify / Login / Logout
//   - Analyze a PDF resume against a job description, optionally saving it
//   - List / Show / Delete / Export saved scans
//   - Profile updates and account deletion
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Whenever a command sends the user to the login view, a hint is printed.
package cli
