package rx_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VarunSharma3520/floatinput/internal/rx"
)

func collect[T any](src rx.Observable[T]) (*[]T, rx.Disposable) {
	got := &[]T{}
	d := src.Subscribe(func(v T) { *got = append(*got, v) })
	return got, d
}

func TestValue(t *testing.T) {
	t.Run("replays current value on subscribe", func(t *testing.T) {
		v := rx.NewValue("seed")
		got, _ := collect[string](v)
		assert.Equal(t, []string{"seed"}, *got)
	})

	t.Run("emits in subscription order", func(t *testing.T) {
		v := rx.NewValue(0)
		var order []string
		v.Subscribe(func(int) { order = append(order, "first") })
		v.Subscribe(func(int) { order = append(order, "second") })
		order = nil

		v.Set(1)
		assert.Equal(t, []string{"first", "second"}, order)
		assert.Equal(t, 1, v.Get())
	})

	t.Run("disposed observer stops receiving", func(t *testing.T) {
		v := rx.NewValue("")
		got, d := collect[string](v)
		v.Set("a")
		d.Dispose()
		v.Set("b")

		assert.Equal(t, []string{"", "a"}, *got)
		assert.Equal(t, 0, v.Len())
	})

	t.Run("observer disposing itself during emit", func(t *testing.T) {
		v := rx.NewValue(0)
		var self rx.Disposable
		calls := 0
		self = v.Subscribe(func(n int) {
			calls++
			if n > 0 {
				self.Dispose()
			}
		})
		other, _ := collect[int](v)

		v.Set(1)
		v.Set(2)

		assert.Equal(t, 2, calls)
		assert.Equal(t, []int{0, 1, 2}, *other)
		assert.Equal(t, 1, v.Len())
	})
}

func TestMap(t *testing.T) {
	v := rx.NewValue("")
	lengths, _ := collect(rx.Map[string, int](v, func(s string) int { return len(s) }))

	v.Set("ab")
	v.Set("abc")

	assert.Equal(t, []int{0, 2, 3}, *lengths)
}

func TestDistinctUntilChanged(t *testing.T) {
	v := rx.NewValue("")
	empty := rx.Map[string, bool](v, func(s string) bool { return s == "" })
	got, _ := collect(rx.DistinctUntilChanged(empty))

	for _, s := range []string{"a", "ab", "a", "", "", "x", ""} {
		v.Set(s)
	}

	want := []bool{true, false, true, false, true}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("emissions mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(*got); i++ {
		require.NotEqual(t, (*got)[i-1], (*got)[i], "duplicate at %d", i)
	}
}

func TestDistinctUntilChangedIsPerSubscription(t *testing.T) {
	v := rx.NewValue("a")
	upper := rx.DistinctUntilChanged(rx.Map[string, string](v, strings.ToUpper))

	first, _ := collect(upper)
	v.Set("a")
	second, _ := collect(upper)

	assert.Equal(t, []string{"A"}, *first)
	assert.Equal(t, []string{"A"}, *second)
}

func TestBag(t *testing.T) {
	t.Run("disposes all registrations together", func(t *testing.T) {
		v := rx.NewValue(0)
		bag := rx.NewBag()
		a, da := collect[int](v)
		b, db := collect[int](v)
		bag.Add(da)
		bag.Add(db)
		require.Equal(t, 2, bag.Len())

		bag.Dispose()
		v.Set(7)

		assert.Equal(t, []int{0}, *a)
		assert.Equal(t, []int{0}, *b)
		assert.True(t, bag.Disposed())
		assert.Equal(t, 0, v.Len())
	})

	t.Run("add after dispose releases immediately", func(t *testing.T) {
		var bag rx.Bag
		bag.Dispose()

		released := false
		bag.Add(rx.DisposeFunc(func() { released = true }))

		assert.True(t, released)
		assert.Equal(t, 0, bag.Len())
	})

	t.Run("dispose twice is a no-op", func(t *testing.T) {
		bag := rx.NewBag()
		count := 0
		bag.Add(rx.DisposeFunc(func() { count++ }))
		bag.Dispose()
		bag.Dispose()
		assert.Equal(t, 1, count)
	})
}
