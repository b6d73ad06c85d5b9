// Package trigger scans a designated channel for threshold crossings and
// extracts the matching segments from every registered channel.
//
// Three detectors share one contract: each run returns strictly ordered,
// non-overlapping windows over the scanned signal. FixedWindow emits
// constant-size windows and rejects any that would be truncated at the
// signal boundary; DynamicWindow follows the signal back below threshold
// and clamps at the boundary instead; DoubleThreshold adds debounce
// rejection of short spikes and a lower re-arm threshold (hysteresis).
//
// Detectors are immutable configuration; all scan state lives in the
// Detect call, so a detector value can be reused across runs.
package trigger
