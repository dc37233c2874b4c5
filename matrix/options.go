// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - NaN is the no-data marker and is always accepted by Set. The numeric
//     policy only governs ±Inf, which has no meaning as a label.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateInf toggles rejection of ±Inf on Set and ingestion.
	DefaultValidateInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateInf bool // DefaultValidateInf
}

// WithValidateInf enables rejection of ±Inf values (default).
// Implementation:
//   - Stage 1: set validateInf=true.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateInf() Option {
	return func(o *Options) { o.validateInf = true }
}

// WithNoValidateInf lets ±Inf pass through Set and ingestion.
// Implementation:
//   - Stage 1: set validateInf=false.
//
// Behavior highlights:
//   - Intended for scratch grids that are sanitized before filtering.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This flag propagates only on creation; existing grids are unaffected.
func WithNoValidateInf() Option {
	return func(o *Options) { o.validateInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateInf: DefaultValidateInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
