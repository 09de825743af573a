// Package signals implements sparse, tagged, discrete-time signals and the
// operators that compose them. A Signal maps recorded times to Samples (one
// value per tag) and carries a half-open validity interval [start, end). It
// is the data substrate for specification and monitoring tools that build
// traces from sampled data.
//
// Typical usage looks like:
//   - Build single-tag Signals with New, or accumulate many channels with
//     a Recorder
//   - Combine them in time (ShiftForward, Concat, Slice) and in parallel
//     (Merge)
//   - Reshape Samples with Map, Filter, Project, Retag, and Transform
//   - Aggregate sliding windows with Rolling and Reduce, or query held
//     values with Interp
//
// Signals are immutable. Every operator returns a new Signal and shares
// unchanged structure with its operands, so Signals can be passed between
// goroutines without synchronization.
//
// The examples/ directory contains a runnable trace that exercises the API
// on a small sensor workload.
package signals
