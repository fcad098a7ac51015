package dheap

import "errors"

var (
	// ErrInvalidArity is returned when an arity of 0 is supplied to New,
	// NewWithFirst or Clear.
	ErrInvalidArity = errors.New("dheap: arity must be at least 1")

	// ErrItemNotFound is returned by identity-addressed priority updates when
	// no queued item has the given identity.
	ErrItemNotFound = errors.New("dheap: item not found")

	// ErrIndexOutOfBounds is returned by position-addressed priority updates
	// when the index does not refer to a queued item.
	ErrIndexOutOfBounds = errors.New("dheap: index out of bounds")

	// ErrEmptyQueue is the panic value of Front when the queue is empty.
	ErrEmptyQueue = errors.New("dheap: queue is empty")
)
