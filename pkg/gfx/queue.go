package gfx

import "errors"

// resolveQueue holds resources of one kind that are either waiting for a
// program to link (pending, FIFO) or resolved against it.
type resolveQueue[T comparable] struct {
	pending  []T
	resolved []T
}

// attach resolves v at once when linked, otherwise queues it.
func (q *resolveQueue[T]) attach(v T, linked bool, resolve func(T) error) error {
	if !linked {
		q.pending = append(q.pending, v)
		return nil
	}
	if err := resolve(v); err != nil {
		return err
	}
	q.adopt(v)
	return nil
}

// adopt marks v resolved without resolving it. It is a no-op for a value
// that is already resolved.
func (q *resolveQueue[T]) adopt(v T) {
	for _, e := range q.resolved {
		if e == v {
			return
		}
	}
	q.resolved = append(q.resolved, v)
}

// drain resolves every pending value in order. Values that fail are
// dropped; their errors are joined.
func (q *resolveQueue[T]) drain(resolve func(T) error) error {
	var errs []error
	for len(q.pending) > 0 {
		v := q.pending[0]
		q.pending = q.pending[1:]
		if err := resolve(v); err != nil {
			errs = append(errs, err)
			continue
		}
		q.adopt(v)
	}
	q.pending = nil
	return errors.Join(errs...)
}
