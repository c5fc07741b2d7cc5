// Package header validates and repairs copyright headers in source files.
//
// It offers CommandBuilder for the Cobra check command, Scanner for the
// bounded detection pass, Rewriter for the in-place year correction, and
// Service for orchestrating the per-file loop with reporting, alongside
// supporting abstractions that enable testing without touching the real
// filesystem or clock.
package header
