package dheap_test

import (
	"fmt"

	"github.com/davidvella/dheap"
)

// ExampleQueue_minHeap demonstrates a binary min-heap over plain ints, where
// the value is its own identity.
func ExampleQueue_minHeap() {
	pq, _ := dheap.New(2, dheap.Min[int], func(v int) int { return v })

	pq.Insert(5)
	pq.Insert(3)
	pq.Insert(7)

	if top, ok := pq.Peek(); ok {
		fmt.Println("peek:", top)
	}

	for v, ok := pq.Pop(); ok; v, ok = pq.Pop() {
		fmt.Println(v)
	}

	// Output:
	// peek: 3
	// 3
	// 5
	// 7
}

// ExampleQueue_maxHeap demonstrates max-heap semantics obtained purely through
// the comparator; the core never branches on orientation.
func ExampleQueue_maxHeap() {
	type job struct {
		name    string
		urgency int
	}

	pq, _ := dheap.New(4,
		dheap.MaxBy(func(j job) int { return j.urgency }),
		func(j job) string { return j.name },
	)

	pq.InsertMany([]job{
		{name: "compact", urgency: 2},
		{name: "flush", urgency: 9},
		{name: "scrub", urgency: 5},
	})

	for j, ok := pq.Pop(); ok; j, ok = pq.Pop() {
		fmt.Printf("%s (%d)\n", j.name, j.urgency)
	}

	// Output:
	// flush (9)
	// scrub (5)
	// compact (2)
}

// ExampleQueue_updatePriority reprioritises a queued item in place, located
// through its identity in O(1).
func ExampleQueue_updatePriority() {
	type job struct {
		name    string
		urgency int
	}

	pq, _ := dheap.New(2,
		dheap.MinBy(func(j job) int { return j.urgency }),
		func(j job) string { return j.name },
	)

	pq.Insert(job{name: "deploy", urgency: 4})
	pq.Insert(job{name: "backup", urgency: 7})
	pq.Insert(job{name: "reindex", urgency: 9})

	// The backup became urgent: same identity, more important priority.
	_ = pq.IncreasePriority(job{name: "backup", urgency: 1})

	for j, ok := pq.Pop(); ok; j, ok = pq.Pop() {
		fmt.Println(j.name)
	}

	// Output:
	// backup
	// deploy
	// reindex
}

// ExampleQueue_shortestPath shows the canonical consumer of an indexed heap: a
// shortest-path relaxation loop keyed by node label, reprioritising nodes in
// place whenever a shorter tentative distance is found.
func ExampleQueue_shortestPath() {
	type hop struct {
		node string
		dist int
	}
	type edge struct {
		to     string
		weight int
	}

	const unreached = 1 << 30
	graph := map[string][]edge{
		"A": {{to: "B", weight: 4}, {to: "C", weight: 1}},
		"B": {{to: "D", weight: 5}},
		"C": {{to: "B", weight: 2}, {to: "D", weight: 8}},
		"D": nil,
	}

	pq, _ := dheap.New(4,
		dheap.MinBy(func(h hop) int { return h.dist }),
		func(h hop) string { return h.node },
	)

	dist := map[string]int{"A": 0, "B": unreached, "C": unreached, "D": unreached}
	for node, d := range dist {
		pq.Insert(hop{node: node, dist: d})
	}

	for !pq.IsEmpty() {
		current, _ := pq.Pop()
		for _, e := range graph[current.node] {
			next := current.dist + e.weight
			if next < dist[e.to] {
				dist[e.to] = next
				_ = pq.IncreasePriority(hop{node: e.to, dist: next})
			}
		}
	}

	for _, node := range []string{"A", "B", "C", "D"} {
		fmt.Printf("%s: %d\n", node, dist[node])
	}

	// Output:
	// A: 0
	// B: 3
	// C: 1
	// D: 8
}

// ExampleQueue_insertMany bulk-loads a batch in linear time instead of n
// sequential inserts.
func ExampleQueue_insertMany() {
	pq, _ := dheap.New(3, dheap.Min[int], func(v int) int { return v })

	pq.InsertMany([]int{50, 30, 70, 10, 40})

	top, _ := pq.Peek()
	fmt.Println(pq.Len(), top)
	fmt.Println(pq.PopMany(2))

	// Output:
	// 5 10
	// [10 30]
}
