// Package simerr defines the sentinel error kinds of spec.md §7:
// planner-dead-end (handled locally by the replan retry loop),
// consensus-failure (propagated to the orchestrator, the run is marked
// failed), and invariant-violation (unrecoverable, the run aborts). None
// of these are retried beyond their designated handler.
package simerr

import "errors"

var (
	// ErrPlannerDeadEnd is returned by the constrained planner when its
	// BFS frontier is exhausted before reaching the destination.
	ErrPlannerDeadEnd = errors.New("planner: dead end")

	// ErrConsensusFailure is raised by the orchestrator when all replan
	// attempts in a coordination phase have failed.
	ErrConsensusFailure = errors.New("orchestrator: consensus failure")

	// ErrInvariantViolation wraps a broken data-model invariant (I1-I6).
	// It is never retried; the run aborts.
	ErrInvariantViolation = errors.New("invariant violation")
)
