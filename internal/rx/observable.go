// Package rx provides a small synchronous push-stream abstraction used to derive
// validation state from text content.
//
// Everything in this package runs inline on the caller's goroutine: emitting a
// value calls every live observer before returning. None of the types are safe
// for concurrent use; they are meant to be driven from a single Bubble Tea
// Update loop.
package rx

// Observable is a source of values that observers can subscribe to.
// Subscribe returns a Disposable that stops delivery when disposed.
type Observable[T any] interface {
	Subscribe(observer func(T)) Disposable
}

// Value is a replaying source holding the latest value. New subscribers
// immediately receive the current value, then every subsequent Set.
type Value[T any] struct {
	current   T
	observers []*observer[T]
}

type observer[T any] struct {
	fn     func(T)
	active bool
}

// NewValue creates a Value seeded with initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the latest value.
func (v *Value[T]) Get() T {
	return v.current
}

// Set stores x and emits it to observers in subscription order.
func (v *Value[T]) Set(x T) {
	v.current = x

	// Observers may dispose themselves (or others) while we emit, so walk a
	// snapshot and check each entry is still live.
	snapshot := append([]*observer[T](nil), v.observers...)
	for _, o := range snapshot {
		if o.active {
			o.fn(x)
		}
	}
	v.compact()
}

// Subscribe registers fn and replays the current value to it.
func (v *Value[T]) Subscribe(fn func(T)) Disposable {
	o := &observer[T]{fn: fn, active: true}
	v.observers = append(v.observers, o)
	fn(v.current)
	return DisposeFunc(func() {
		o.active = false
		v.compact()
	})
}

// Len reports the number of live observers.
func (v *Value[T]) Len() int {
	n := 0
	for _, o := range v.observers {
		if o.active {
			n++
		}
	}
	return n
}

func (v *Value[T]) compact() {
	live := v.observers[:0]
	for _, o := range v.observers {
		if o.active {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(v.observers); i++ {
		v.observers[i] = nil
	}
	v.observers = live
}

type mapped[T, U any] struct {
	src Observable[T]
	fn  func(T) U
}

// Map derives an Observable by applying fn to every value of src.
func Map[T, U any](src Observable[T], fn func(T) U) Observable[U] {
	return &mapped[T, U]{src: src, fn: fn}
}

func (m *mapped[T, U]) Subscribe(observer func(U)) Disposable {
	return m.src.Subscribe(func(t T) {
		observer(m.fn(t))
	})
}

type distinct[T comparable] struct {
	src Observable[T]
}

// DistinctUntilChanged suppresses values equal to the one last delivered to
// the same subscriber. Each subscription tracks its own last value.
func DistinctUntilChanged[T comparable](src Observable[T]) Observable[T] {
	return &distinct[T]{src: src}
}

func (d *distinct[T]) Subscribe(observer func(T)) Disposable {
	var (
		last T
		seen bool
	)
	return d.src.Subscribe(func(t T) {
		if seen && t == last {
			return
		}
		last, seen = t, true
		observer(t)
	})
}
