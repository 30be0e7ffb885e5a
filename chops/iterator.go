// Package chops turns pull-style iterators into channels.
package chops

import (
	"context"
	"sync"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  func()
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when iteration ends for any reason.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. It may be called any number of times,
// from any goroutine. If the Items channel is closed, this doesn't
// need to be called.
func (c CoIterator[T]) Stop() {
	c.stop()
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](ctx, x.Iterator())
//	defer co.Stop()
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			break
//		}
//	}
//
// CoIterate starts a goroutine, which exits when the iterator is
// exhausted, Stop is called, or ctx is done, whichever happens first.
// The iterator is only touched by that goroutine, and never after it
// has exited.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	var once sync.Once
	co := CoIterator[T]{
		items: out,
		stop:  func() { once.Do(func() { close(stop) }) },
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}(out, stop, iterator)

	return co
}

// Collect drains the whole iterator into a slice.
func Collect[T any](iterator Iterator[T]) []T {
	var out []T
	if iterator == nil {
		return out
	}
	for iterator.Next() {
		out = append(out, iterator.Item())
	}
	return out
}
