// Package errors provides structured error types shared by archpath commands.
//
// Every user-facing failure names the check that failed through an error code,
// so the environment-setup glue consuming the CLI can tell a missing stack
// root apart from a failed CPU detection.
//
// Example:
//
//	err := errors.Wrap(
//	    errors.ErrCodeNotFound,
//	    "software stack root not found",
//	    statErr,
//	)
package errors
