// Package registry provides the process-wide catalog of operation
// definitions.
//
// The Registry is an explicit, constructed object rather than a
// language-level singleton: whichever component composes the application
// owns it and passes it by reference to the engine. This keeps it
// test-constructible and avoids hidden cross-test state.
//
// The registry is populated once at startup and treated as read-only
// afterwards, so lookups during execution need no locking. Registration
// failures (duplicate id, malformed schema) are returned as errors and
// should abort startup; call validation, by contrast, reports problems as
// plain message strings so the engine can decide how to surface them
// without unwinding the stack for expected, recoverable failures.
package registry
