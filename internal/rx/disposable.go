package rx

// Disposable releases a subscription or any other registration.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable.
type DisposeFunc func()

// Dispose calls f.
func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}

// Bag owns a group of disposables and releases them together.
// The zero value is ready to use.
type Bag struct {
	items    []Disposable
	disposed bool
}

// NewBag returns an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add registers d with the bag. If the bag was already disposed, d is
// disposed right away so nothing outlives its owner.
func (b *Bag) Add(d Disposable) {
	if d == nil {
		return
	}
	if b.disposed {
		d.Dispose()
		return
	}
	b.items = append(b.items, d)
}

// Dispose releases every registered disposable in registration order.
// Calling it more than once is a no-op.
func (b *Bag) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	items := b.items
	b.items = nil
	for _, d := range items {
		d.Dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (b *Bag) Disposed() bool {
	return b.disposed
}

// Len returns the number of registrations still held.
func (b *Bag) Len() int {
	return len(b.items)
}
