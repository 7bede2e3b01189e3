// Package cli provides the account command-line client.
//
// It wires configuration and the HTTP API client into either a single
// command taken from the command line (e.g. "client login") or an
// interactive REPL when no command is given.
//
// Commands:
//   - signup: create an account (password asked twice)
//   - login: check credentials
//   - request-reset: obtain a password reset token for an email
//   - reset: set a new password using a reset token
//
// Passwords are read from the terminal without echo and wiped after use.
package cli
