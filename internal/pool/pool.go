// Package pool recycles Poolable objects instead of allocating new ones for
// every spawn.
//
// The pool owns the lifecycle contract of capability.Poolable: every
// OnAcquireFromPool is followed by exactly one OnReturnToPool before the
// object can be acquired again. A Pool is not safe for concurrent use; it
// belongs to the game loop that spawns the objects.
package pool

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/tircore/internal/capability"
)

// ErrNotAcquired is returned when releasing an object that is not currently
// checked out of the pool.
var ErrNotAcquired = errors.New("object is not acquired from this pool")

// Item is an object the pool can manage.
type Item interface {
	comparable
	capability.Poolable
}

// Pool hands out idle objects and creates new ones on demand.
type Pool[T Item] struct {
	logger  *slog.Logger
	factory func() T
	idle    []T
	inUse   map[T]struct{}
	created int
}

// New creates an empty pool that builds objects with factory.
func New[T Item](logger *slog.Logger, factory func() T) *Pool[T] {
	return &Pool[T]{
		logger:  logger,
		factory: factory,
		inUse:   make(map[T]struct{}),
	}
}

// Acquire returns an idle object, or a new one if none is idle, after
// calling its OnAcquireFromPool.
func (p *Pool[T]) Acquire() T {
	var item T
	if n := len(p.idle); n > 0 {
		item = p.idle[n-1]
		p.idle = p.idle[:n-1]
	} else {
		item = p.factory()
		p.created++
		p.logger.Debug("Pool grew.", "created", p.created)
	}

	p.inUse[item] = struct{}{}
	item.OnAcquireFromPool()
	return item
}

// Release calls OnReturnToPool and makes item available again.
func (p *Pool[T]) Release(item T) error {
	if _, ok := p.inUse[item]; !ok {
		return fmt.Errorf("release: %w", ErrNotAcquired)
	}

	delete(p.inUse, item)
	item.OnReturnToPool()
	p.idle = append(p.idle, item)
	return nil
}

// Idle returns the number of objects waiting to be acquired.
func (p *Pool[T]) Idle() int {
	return len(p.idle)
}

// InUse returns the number of objects currently checked out.
func (p *Pool[T]) InUse() int {
	return len(p.inUse)
}

// Created returns how many objects the factory has built.
func (p *Pool[T]) Created() int {
	return p.created
}
