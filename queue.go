package dheap

import (
	"fmt"
	"strings"
)

// Comparator reports whether a has higher priority than b. The queue never
// inspects priorities itself; this single predicate defines the total order,
// so the same core serves min-heaps and max-heaps alike.
type Comparator[T any] func(a, b T) bool

// Identity extracts the identity key of an item. The key must be unique per
// item and must not change while the item is queued; it is what the position
// index is keyed by, and it must never depend on the item's priority.
type Identity[T any, K comparable] func(item T) K

// Queue is an indexed d-ary heap. The zero value is not usable; construct
// with New or NewWithFirst.
type Queue[T any, K comparable] struct {
	items     []T
	positions map[K]int
	arity     int
	higher    Comparator[T]
	identity  Identity[T, K]
}

// New creates an empty queue with the given arity, priority comparator and
// identity function. Returns ErrInvalidArity if arity is 0. Arity 1 is legal
// and degenerates into a sorted list with O(n) insertion.
func New[T any, K comparable](arity int, higher Comparator[T], identity Identity[T, K], opts ...Option) (*Queue[T, K], error) {
	if arity < 1 {
		return nil, ErrInvalidArity
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[T, K]{
		items:     make([]T, 0, o.capacity),
		positions: make(map[K]int, o.capacity),
		arity:     arity,
		higher:    higher,
		identity:  identity,
	}, nil
}

// NewWithFirst creates a queue seeded with a single item, skipping the no-op
// rebalance a construct-then-insert sequence would do. Returns ErrInvalidArity
// if arity is 0.
func NewWithFirst[T any, K comparable](arity int, higher Comparator[T], identity Identity[T, K], first T, opts ...Option) (*Queue[T, K], error) {
	pq, err := New(arity, higher, identity, opts...)
	if err != nil {
		return nil, err
	}
	pq.items = append(pq.items, first)
	pq.positions[pq.identity(first)] = 0
	return pq, nil
}

// Len returns the number of items in the queue.
func (pq *Queue[T, K]) Len() int {
	return len(pq.items)
}

// IsEmpty reports whether the queue holds no items.
func (pq *Queue[T, K]) IsEmpty() bool {
	return len(pq.items) == 0
}

// Arity returns the maximum number of children per node.
func (pq *Queue[T, K]) Arity() int {
	return pq.arity
}

// Contains reports whether an item with the same identity is queued.
func (pq *Queue[T, K]) Contains(item T) bool {
	return pq.ContainsKey(pq.identity(item))
}

// ContainsKey reports whether an item with the given identity key is queued.
func (pq *Queue[T, K]) ContainsKey(key K) bool {
	_, exists := pq.positions[key]
	return exists
}

// PositionOf returns the current store index of the item with the same
// identity, or false if it is not queued. The index stays valid only until
// the next mutation.
func (pq *Queue[T, K]) PositionOf(item T) (int, bool) {
	return pq.PositionOfKey(pq.identity(item))
}

// PositionOfKey returns the current store index of the item with the given
// identity key, or false if it is not queued.
func (pq *Queue[T, K]) PositionOfKey(key K) (int, bool) {
	pos, exists := pq.positions[key]
	return pos, exists
}

// Peek returns the highest-priority item without removing it, or false if the
// queue is empty.
func (pq *Queue[T, K]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// Front returns the highest-priority item without removing it. It panics with
// ErrEmptyQueue if the queue is empty; defensive callers should use Peek.
func (pq *Queue[T, K]) Front() T {
	if len(pq.items) == 0 {
		panic(ErrEmptyQueue)
	}
	return pq.items[0]
}

// ToSlice returns a copy of the items in heap layout, not in priority order.
// Index 0 is the highest-priority item; beyond that the order is whatever the
// heap shape happens to be.
func (pq *Queue[T, K]) ToSlice() []T {
	out := make([]T, len(pq.items))
	copy(out, pq.items)
	return out
}

// String renders the items in store order as "{a, b, c}". Diagnostic only.
func (pq *Queue[T, K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, item := range pq.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Insert adds a new item according to its priority. Inserting an item whose
// identity is already queued corrupts the position index; use Contains first,
// or one of the priority update methods.
func (pq *Queue[T, K]) Insert(item T) {
	index := len(pq.items)
	pq.items = append(pq.items, item)
	pq.positions[pq.identity(item)] = index
	pq.moveUp(index)
}

// InsertMany adds a batch of items. All items are appended first and heap
// order is then rebuilt with a single sift-down sweep from the last internal
// node, which costs O(n) total instead of O(n·log n) for sequential inserts.
func (pq *Queue[T, K]) InsertMany(items []T) {
	if len(items) == 0 {
		return
	}
	start := len(pq.items)
	for i, item := range items {
		pq.items = append(pq.items, item)
		pq.positions[pq.identity(item)] = start + i
	}
	if len(items) == 1 {
		pq.moveUp(start)
		return
	}
	pq.heapify()
}

// Pop removes and returns the highest-priority item, or false if the queue is
// empty.
func (pq *Queue[T, K]) Pop() (T, bool) {
	n := len(pq.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	top := pq.items[0]
	delete(pq.positions, pq.identity(top))

	if n == 1 {
		pq.items = pq.items[:0]
		return top, true
	}

	last := pq.items[n-1]
	pq.items[0] = last
	pq.positions[pq.identity(last)] = 0
	pq.items = pq.items[:n-1]
	pq.moveDown(0)

	return top, true
}

// PopMany removes and returns up to count highest-priority items, in strict
// priority order. Fewer items are returned if the queue runs out.
func (pq *Queue[T, K]) PopMany(count int) []T {
	if count <= 0 {
		return nil
	}
	if count > len(pq.items) {
		count = len(pq.items)
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		item, ok := pq.Pop()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}

// IncreasePriority replaces the queued item sharing updated's identity and
// moves it toward the root. The caller asserts the new priority is more
// important; if it is not, heap order is not restored. Returns ErrItemNotFound
// if the identity is not queued.
func (pq *Queue[T, K]) IncreasePriority(updated T) error {
	index, exists := pq.positions[pq.identity(updated)]
	if !exists {
		return ErrItemNotFound
	}
	pq.items[index] = updated
	pq.moveUp(index)
	return nil
}

// DecreasePriority replaces the queued item sharing updated's identity and
// moves it toward the leaves. The caller asserts the new priority is less
// important. Returns ErrItemNotFound if the identity is not queued.
func (pq *Queue[T, K]) DecreasePriority(updated T) error {
	index, exists := pq.positions[pq.identity(updated)]
	if !exists {
		return ErrItemNotFound
	}
	pq.items[index] = updated
	pq.moveDown(index)
	return nil
}

// UpdatePriority replaces the queued item sharing updated's identity and
// re-balances in both directions; use it when the direction of the priority
// change is unknown. At most one of the two walks moves the item. Returns
// ErrItemNotFound if the identity is not queued.
func (pq *Queue[T, K]) UpdatePriority(updated T) error {
	key := pq.identity(updated)
	index, exists := pq.positions[key]
	if !exists {
		return ErrItemNotFound
	}
	pq.items[index] = updated
	pq.moveUp(index)
	// moveUp may have relocated the item.
	pq.moveDown(pq.positions[key])
	return nil
}

// IncreasePriorityAt re-balances the item at index toward the root after the
// caller has made it more important. Returns ErrIndexOutOfBounds if index does
// not refer to a queued item.
func (pq *Queue[T, K]) IncreasePriorityAt(index int) error {
	if index < 0 || index >= len(pq.items) {
		return ErrIndexOutOfBounds
	}
	pq.moveUp(index)
	return nil
}

// DecreasePriorityAt re-balances the item at index toward the leaves after the
// caller has made it less important. Returns ErrIndexOutOfBounds if index does
// not refer to a queued item.
func (pq *Queue[T, K]) DecreasePriorityAt(index int) error {
	if index < 0 || index >= len(pq.items) {
		return ErrIndexOutOfBounds
	}
	pq.moveDown(index)
	return nil
}

// UpdatePriorityAt re-balances the item at index in both directions; use it
// when the direction of the priority change is unknown. Returns
// ErrIndexOutOfBounds if index does not refer to a queued item.
func (pq *Queue[T, K]) UpdatePriorityAt(index int) error {
	if index < 0 || index >= len(pq.items) {
		return ErrIndexOutOfBounds
	}
	key := pq.identity(pq.items[index])
	pq.moveUp(index)
	pq.moveDown(pq.positions[key])
	return nil
}

// Clear removes all items. An optional new arity replaces the current one;
// Clear(0) fails with ErrInvalidArity and leaves the queue untouched.
func (pq *Queue[T, K]) Clear(newArity ...int) error {
	if len(newArity) > 0 {
		if newArity[0] < 1 {
			return ErrInvalidArity
		}
		pq.arity = newArity[0]
	}
	pq.items = pq.items[:0]
	clear(pq.positions)
	return nil
}

// swap exchanges the items at i and j and updates the position index for both
// identities in the same step. A partial swap that updates only one side
// leaves the index out of sync with the store and must never occur.
func (pq *Queue[T, K]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.positions[pq.identity(pq.items[i])] = i
	pq.positions[pq.identity(pq.items[j])] = j
}

// moveUp sifts the item at index i toward the root until its parent outranks
// it.
func (pq *Queue[T, K]) moveUp(i int) {
	for i > 0 {
		parent := (i - 1) / pq.arity
		if !pq.higher(pq.items[i], pq.items[parent]) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// moveDown sifts the item at index i toward the leaves, swapping with its
// highest-priority child until no child outranks it.
func (pq *Queue[T, K]) moveDown(i int) {
	for {
		child, ok := pq.bestChild(i)
		if !ok || !pq.higher(pq.items[child], pq.items[i]) {
			break
		}
		pq.swap(i, child)
		i = child
	}
}

// bestChild returns the index of the highest-priority existing child of i, or
// false if i is a leaf. Ties go to the leftmost child: a later child wins only
// by strictly higher priority.
func (pq *Queue[T, K]) bestChild(i int) (int, bool) {
	first := i*pq.arity + 1
	n := len(pq.items)
	if first >= n {
		return 0, false
	}
	last := first + pq.arity
	if last > n {
		last = n
	}
	best := first
	for j := first + 1; j < last; j++ {
		if pq.higher(pq.items[j], pq.items[best]) {
			best = j
		}
	}
	return best, true
}

// heapify rebuilds heap order over the whole store with Floyd's bottom-up
// sweep: sift down every internal node from the last one back to the root.
func (pq *Queue[T, K]) heapify() {
	n := len(pq.items)
	if n < 2 {
		return
	}
	for i := (n - 2) / pq.arity; i >= 0; i-- {
		pq.moveDown(i)
	}
}
