// Package distance builds the Distance Index: every unordered pair of points
// in a point.Store as a weighted Edge, in one deterministic total order.
//
// Ordering
//
//	primary   : ascending Euclidean distance
//	secondary : ascending (A, B) lexicographically, where A < B are point IDs
//
// The tie-break makes the merge sequence reproducible regardless of how pairs
// were enumerated or how many workers computed them.
//
// Distances are computed exactly in integers (sum of squared coordinate
// differences, see point.MaxCoordinate) and converted to float64 with a single
// square root.
//
// Complexity: O(n²) pair generation + O(n² log n) sort, O(n²) memory.
// Expected inputs are hundreds to low thousands of points.
//
// Parallelism: WithWorkers fans rows of the pair triangle out over an
// errgroup. Each worker owns a disjoint range of the output slice, and the
// final sort is total, so the Index is bit-identical for any worker count.
package distance
