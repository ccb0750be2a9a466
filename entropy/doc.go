// Package entropy implements multi-scale sample entropy analysis.
//
// The pipeline has three stages. CoarseGrain block-averages a series to
// simulate observing it at a coarser time scale. SampleEntropy quantifies the
// irregularity of one series as -ln(A/B), where A and B are the relative
// frequencies of repeating templates of length m+1 and m. ComplexityIndex
// sweeps scales 1..MaxScale and integrates the per-scale entropies with the
// trapezoidal rule into a single index.
//
// SampleEntropy is the hot path: template matching is O(N²·m) per scale and
// per feature column. The loops are kept as plain index arithmetic with an
// early abort on the Chebyshev distance for that reason.
//
// Insufficient or degenerate data (short series, near-constant signal) yields
// NaN rather than an error: during warm-up of a sliding window this is the
// expected steady state, and callers poll until values become available.
package entropy
