// Package junction wires junction boxes in 3-D space into circuits by
// repeatedly connecting the closest unconnected pair, and answers questions
// about the circuits that form along the way.
//
// 🚀 What is junction?
//
//	A small, deterministic single-linkage clustering toolkit:
//		• point/     — immutable 3-D integer points + "x,y,z" ingestion
//		• distance/  — every pairwise edge in one total order (distance, then IDs)
//		• partition/ — scan-based and union-find partitions with identical behaviour
//		• circuit/   — the merge driver: top-k circuit sizes, the closing edge, snapshots
//		• metrics/   — Prometheus collectors for replays and queries
//		• cmd/junction — CLI over all of the above
//
// ✨ Guarantees
//
//   - Deterministic – equal-distance edges are ordered by (lower ID, higher ID),
//     so results are reproducible across runs, worker counts and strategies.
//   - Exact – squared distances are integers; only the final root is a float.
//   - No shared state – every query replays into its own fresh partition.
//
// Quick ASCII example:
//
//	A(0,0,0) ──5── B(3,4,0)
//	   │
//	   5
//	   │
//	C(0,0,5)              D(10,10,10)
//
// The first two connections (AB, then AC on the ID tie-break) form circuit
// {A,B,C}; BC is then a no-op and BD closes the last gap, so the convergence
// product is B.x · D.x = 30.
//
//	go get github.com/katalvlaran/junction
package junction
