// Package store is the caller-side cache the scoring engine's exported
// state is designed for: a small SQLite database that keeps precomputed
// reference session states keyed by the caller's reference identifier, plus
// a history of evaluation results.
//
// The engine itself stays memory-only; nothing here is required to score a
// drawing. Callers that evaluate the same reference across many processes
// use the cache to skip the reference flood fill on every start.
package store
