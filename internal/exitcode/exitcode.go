// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including runs where
	// individual rows failed but the batch finished.
	Success = 0

	// UserError indicates a user error (bad args, missing config, bad CSV).
	UserError = 1

	// AuthError indicates the API token was rejected.
	AuthError = 2

	// BackendError indicates a backend/API/network error, including an
	// unknown list ID.
	BackendError = 3
)
