// Package circuit is the merge driver: it replays a distance.Index edge by
// edge against a fresh partition.Clusters and answers questions about the
// resulting circuits (clusters of connected junction boxes).
//
// Queries
//
//   - BoundedTopKProduct(edgeLimit, k)
//     Consume exactly the first edgeLimit edges (edges joining points that are
//     already connected still count), then multiply the sizes of the k
//     largest circuits.
//
//   - ConvergenceEndpointProduct()
//     Consume edges until the one that joins the last two circuits (the
//     closing edge) and multiply the X coordinates of its endpoints.
//
//   - Converge() and Snapshot(edgeLimit) expose the same replays with more
//     detail: the closing edge and its position, or every circuit's members,
//     centroid and radius.
//
// State machine
//
//	n ──union──▶ n-1 ──union──▶ … ──union──▶ 1
//
// Only effective unions move the state; no-op edges leave it in place. Each
// query builds its own partition, so a Driver may serve concurrent callers.
//
// Error Conditions
//
//   - ErrNilIndex             : New received a nil index.
//   - ErrOptionViolation      : an Option was invalid.
//   - ErrInvalidArgument      : edgeLimit or k outside its allowed range.
//   - ErrInsufficientClusters : fewer than k circuits remain after edgeLimit edges.
//   - ErrProductOverflow      : the top-k product does not fit in a uint64.
//   - ErrNeverConverges       : the edge sequence ended with more than one
//     circuit. Unreachable for an index built by distance.Build; seeing it
//     means the index was corrupted.
//
// No query retries and no query returns a partial result alongside an error.
package circuit
