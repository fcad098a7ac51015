// Package dheap implements a generic indexed d-ary heap priority queue. The
// queue keeps a collection of items ordered by priority while maintaining an
// identity-to-position index, so membership checks, position lookups and
// in-place priority updates of an already-queued item all run in O(1) lookup
// time plus the cost of re-balancing.
//
// The heap is backed by a dense slice representing a complete d-ary tree
// (parent and child positions are computed from index arithmetic, there are
// no node pointers) together with a map from item identity to current slice
// index. The ordering is determined by a user-provided comparison function,
// and the identity is extracted by a user-provided key function, so the same
// core serves min-heaps, max-heaps and arbitrary key-extraction policies.
//
// Key features:
//   - Generic over the item type and any comparable identity key type
//   - Configurable arity: wider heaps trade deeper sift-downs for shallower
//     sift-ups, which favours update-heavy workloads
//   - O(log_d n) insertion, O(d·log_d n) extraction
//   - O(1) membership and position lookups
//   - In-place priority updates addressed by identity or by position
//   - O(n) bulk loading via linear-time heap construction
//
// Basic usage:
//
//	// Create a quaternary min-heap keyed by task ID.
//	pq, err := dheap.New(4,
//	    func(a, b Task) bool { return a.Priority < b.Priority },
//	    func(t Task) string { return t.ID },
//	)
//	if err != nil {
//	    // only fails on arity 0
//	}
//
//	pq.Insert(Task{ID: "backup", Priority: 5})
//	pq.Insert(Task{ID: "deploy", Priority: 1})
//
//	// Reprioritise a queued task in place.
//	if err := pq.IncreasePriority(Task{ID: "backup", Priority: 0}); err != nil {
//	    // dheap.ErrItemNotFound if "backup" was never queued
//	}
//
//	for task, ok := pq.Pop(); ok; task, ok = pq.Pop() {
//	    fmt.Println(task.ID)
//	}
//
// The identity key must depend only on the immutable facet of an item, never
// on its priority; the position index is keyed by it and survives priority
// mutations. The queue is not safe for concurrent use without external
// synchronisation.
package dheap
