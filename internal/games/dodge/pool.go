package dodge

import "errors"

// ErrAlreadyFree is returned when an item is released while it is already
// sitting in the pool.
var ErrAlreadyFree = errors.New("dodge: item already released to pool")

// Pool recycles items so spawning does not allocate once the pool is warm.
// It has no capacity bound. Items must be pointers or other comparable
// handles. A Pool is not safe for concurrent use; the simulation owns it.
type Pool[T comparable] struct {
	newFn   func() T
	resetFn func(T)
	free    []T
	idle    map[T]struct{}
	created int
}

// NewPool creates a pool that builds items with newFn and restores them
// with resetFn on release.
func NewPool[T comparable](newFn func() T, resetFn func(T)) *Pool[T] {
	return &Pool[T]{
		newFn:   newFn,
		resetFn: resetFn,
		idle:    make(map[T]struct{}),
	}
}

// Acquire returns a free item, or constructs one when none is free.
// The returned item is always in its reset state.
func (p *Pool[T]) Acquire() T {
	if n := len(p.free); n > 0 {
		item := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		delete(p.idle, item)
		return item
	}
	p.created++
	return p.newFn()
}

// Release resets item and makes it available to Acquire. Releasing an
// item that is already free returns ErrAlreadyFree and changes nothing.
func (p *Pool[T]) Release(item T) error {
	if _, ok := p.idle[item]; ok {
		return ErrAlreadyFree
	}
	if p.resetFn != nil {
		p.resetFn(item)
	}
	p.idle[item] = struct{}{}
	p.free = append(p.free, item)
	return nil
}

// Free returns the number of items waiting to be acquired.
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Created returns the number of items ever constructed by the pool.
func (p *Pool[T]) Created() int {
	return p.created
}

// newObstaclePool creates a pool of obstacles with fixed size and radius.
func newObstaclePool(size, radius float64) *Pool[*Obstacle] {
	return NewPool(
		func() *Obstacle { return NewObstacle(size, radius) },
		func(o *Obstacle) { o.reset() },
	)
}
