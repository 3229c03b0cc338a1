package component

// Queue holds callbacks deferred until the host commits a render.
// It is owned by the lifecycle carrier of one mounted component.
type Queue struct {
	callbacks []func()
}

// Push appends fn to the current batch.
func (q *Queue) Push(fn func()) {
	if fn == nil {
		return
	}
	q.callbacks = append(q.callbacks, fn)
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	return len(q.callbacks)
}

// Drain runs the current batch in registration order and returns how many
// callbacks ran. The batch is detached before the first callback runs, so a
// batch never runs twice and callbacks queued while draining wait for the
// next drain.
func (q *Queue) Drain() int {
	batch := q.callbacks
	q.callbacks = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Drop discards the current batch without running it and returns its size.
func (q *Queue) Drop() int {
	n := len(q.callbacks)
	q.callbacks = nil
	return n
}
