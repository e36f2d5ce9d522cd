// Package errs defines the error types the API hands back to clients.
//
// It handles:
//   - A consistent JSON error shape for every failed request (HTTPError).
//   - Field-level validation errors so clients can highlight bad input.
//   - Constructors for the status codes the API actually produces.
//   - Errors that play nicely with Go's standard errors package.
package errs
