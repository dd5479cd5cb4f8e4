// Package errors provides structured error types shared by the savor
// components.
//
// Errors carry a classification code so callers can decide how to react
// without string matching: configuration errors abort the run, remote and
// suggestion errors skip the current item and continue.
//
// Usage:
//
//	if err := client.CreateCategory(ctx, name); err != nil {
//	    if errors.HasCode(err, errors.ErrCodeUnauthorized) {
//	        return err // fatal, token is bad for every call
//	    }
//	    slog.Warn("skipping category", "name", name, "error", err)
//	}
//
// StructuredError implements Unwrap, so errors.Is and errors.As work
// through wrapped causes.
package errors
