// Package dominance derives dominance and leadership metrics from
// multivariate movement windows using multi-scale entropy.
//
// Each feature column of a window snapshot is treated as one performer's
// movement series. The analyzer computes a complexity index per column and
// reduces the indices into dominance scores and a leader. The method follows
// Glowinski et al. (2010): lower movement complexity is read as higher
// behavioral dominance, so the leader is the column with the minimum
// complexity index. That orientation is part of the method, not a bug.
package dominance
