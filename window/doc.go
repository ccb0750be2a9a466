// Package window provides a fixed-capacity, timestamped sliding window over
// multivariate sample streams.
//
// A SlidingWindow is a ring buffer of capacity×columns float32 cells plus one
// float64 timestamp per row. A producer appends one sample row at a time; once
// the window is full each append evicts the oldest row. A consumer takes a
// Snapshot, which copies the retained rows in chronological order into an
// immutable Frame. Append and Snapshot are safe to call from different
// goroutines; a snapshot never observes a half-written row.
//
// Samples are stored at float32 precision to keep large windows dense.
// Snapshot upcasts to float64, so all downstream math runs at full precision
// on the copied data.
package window
