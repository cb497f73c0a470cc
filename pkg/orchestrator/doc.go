// Package orchestrator wires the loader → session → document builder →
// renderer → printer pipeline, providing dependency injection friendly helpers
// for consumers that prefer a single entry point.
package orchestrator
