// Package partition maintains a partition of point IDs {0..n-1} into
// disjoint clusters, starting from n singletons and only ever merging.
//
// Two implementations share the Clusters interface and are observably
// identical for any sequence of Union calls:
//
//   - Scan (StrategyScan): an ordered slice of clusters, each a sorted member
//     list. Find is a linear scan that returns the cluster's current position;
//     Union extends the cluster holding a with the members of the cluster
//     holding b and removes the absorbed slot. O(n) per operation.
//
//   - DisjointSet (StrategyIndexed): parent/size arrays with union by size and
//     path halving. Find returns the root ID. Near O(1) amortized.
//
// Only Find's return value differs between them: it is a cluster handle that
// is stable until the next effective Union, and equal for two points exactly
// when they share a cluster.
//
// Invariants (hold after every call):
//
//   - clusters are pairwise disjoint and their union is {0..n-1};
//   - the sum of cluster sizes is n;
//   - Count() never increases;
//   - after Union(a, b), Find(a) == Find(b).
//
// Neither implementation is safe for concurrent mutation; a partition is owned
// by a single query.
package partition
