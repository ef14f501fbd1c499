// Package observe tracks the wall-clock side of a drawing session: when it
// started, when it finished, and how fast the artist worked.
//
// A Tracker is a stopwatch plus light per-stroke bookkeeping. It knows the
// reference drawing's pixel count so it can report drawing speed in pixels
// per second once the session finishes; stroke sizes and inter-stroke
// intervals feed simple summary statistics.
//
// The tracker carries no scoring logic and the scoring engine carries no
// clocks — the two compose in the caller.
package observe
