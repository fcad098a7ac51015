package dheap

// options defines all configuration options for a queue.
type options struct {
	capacity int // Pre-allocation hint for the store and index
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithCapacity pre-allocates the backing store and position index for n
// items. Values below one are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: 0,
	}
}
