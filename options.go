// SPDX-License-Identifier: MIT

// Package matexpr: functional configuration for evaluation. This file
// defines:
//   - EvalOption / evalOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherEvalOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matexpr

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of goroutines used by Eval's fill
	// loop. 1 means strictly sequential row-major evaluation.
	DefaultWorkers = 1

	// DefaultFastPath toggles the concrete-leaf fast paths in Eval
	// (flat-slice loops and float64 block kernels). The fast paths
	// accumulate in the same per-cell order as the generic walk and are
	// bit-identical to it; disable to force the generic interface walk
	// (useful when comparing paths).
	DefaultFastPath = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicWorkersInvalid = "matexpr: WithWorkers: workers must be >= 1"

// ---------- Public option type (functional) ----------

// EvalOption mutates internal evaluation options. Safe to apply
// repeatedly (idempotent). Constructors MUST panic only on nonsensical
// values (programmer error).
type EvalOption func(*evalOptions)

// evalOptions stores the effective configuration after applying
// EvalOption setters. Intentionally unexported; public entry points
// accept `...EvalOption` and resolve them via gatherEvalOptions.
type evalOptions struct {
	workers  int  // >= 1; DefaultWorkers
	fastPath bool // DefaultFastPath
}

// ---------- Constructors (WithX) ----------

// WithWorkers sets the number of goroutines Eval uses to fill the
// output buffer. Workers own disjoint row ranges, so the "each cell
// visited exactly once, queried exactly once" contract holds without
// any cross-cell synchronization; requesting more workers than rows is
// harmless (capped inside Eval).
//
// Use only on expressions whose operands are not mutated concurrently;
// the library itself never mutates operands.
//
// Panics with a stable message when n < 1.
// Complexity: O(1).
func WithWorkers(n int) EvalOption {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *evalOptions) { o.workers = n }
}

// WithNoFastPath forces Eval to use the generic interface walk even
// when concrete-leaf fast paths apply. Intended for tests and for
// comparing fast-path output against the reference walk.
// Complexity: O(1).
func WithNoFastPath() EvalOption {
	return func(o *evalOptions) { o.fastPath = false }
}

// ---------- Option Resolution ----------

// gatherEvalOptions applies user-provided setters on top of defaults
// (last-writer-wins). This is the canonical internal entry; Eval calls
// it exactly once per invocation.
// Complexity: O(k) for k options.
func gatherEvalOptions(user ...EvalOption) evalOptions {
	o := evalOptions{
		workers:  DefaultWorkers,
		fastPath: DefaultFastPath,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
