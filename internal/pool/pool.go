package pool

// Resettable is implemented by values that can be cleared for reuse.
type Resettable interface {
	Reset()
}

// Poolable values are resettable and comparable, so a zero value can be told apart.
type Poolable interface {
	Resettable
	comparable
}

// Pool keeps up to a fixed number of reusable values of type T.
type Pool[T Poolable] struct {
	items chan T
	newFn func() T
}

// New creates a Pool holding at most capacity idle values. newFn builds a
// value when the pool is empty; with a nil newFn Get returns the zero T.
func New[T Poolable](capacity int, newFn func() T) *Pool[T] {
	return &Pool[T]{
		items: make(chan T, capacity),
		newFn: newFn,
	}
}

// Get takes an idle value or builds a new one.
func (p *Pool[T]) Get() T {
	select {
	case item := <-p.items:
		return item
	default:
		if p.newFn != nil {
			return p.newFn()
		}
		var zero T
		return zero
	}
}

// Put resets item and keeps it if there is room. Zero values are dropped.
func (p *Pool[T]) Put(item T) {
	var zero T
	if item == zero {
		return
	}
	item.Reset()

	select {
	case p.items <- item:
	default:
	}
}

// Len reports the number of idle values.
func (p *Pool[T]) Len() int {
	return len(p.items)
}
