// Package counter implements a multiset that counts occurrences of
// comparable items, or accumulates numeric weights per item.
//
// Looking up an absent item is never an error: Get returns the zero count
// and leaves the Counter untouched, while Entry inserts a zero entry and
// returns a handle for read-modify-write.
//
// A Counter is not safe for concurrent use.
package counter

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Counter maps items to counts of type C, using the algebra A for the
// arithmetic on C.
//
// The zero value is an empty Counter whose cached zero is the Go zero value
// of C. For the built-in numeric types that is the additive identity; for
// other count types use New or NewWith.
type Counter[T comparable, C any, A Arith[C]] struct {
	m    map[T]C
	zero C
	ops  A
}

// Of is a Counter over a built-in numeric count type.
type Of[T comparable, C Number] = Counter[T, C, Numeric[C]]

// Creates an empty Counter using the zero value of A as its algebra.
func New[T comparable, C any, A Arith[C]]() *Counter[T, C, A] {
	var ops A

	return NewWith[T, C, A](ops)
}

// Creates an empty Counter using the given algebra.
func NewWith[T comparable, C any, A Arith[C]](ops A) *Counter[T, C, A] {
	return &Counter[T, C, A]{
		m:    make(map[T]C),
		zero: ops.Zero(),
		ops:  ops,
	}
}

// Creates a Counter holding one unit for every occurrence in items.
func Init[T comparable, C any, A Arith[C]](items ...T) *Counter[T, C, A] {
	c := New[T, C, A]()
	c.Update(items...)

	return c
}

// Creates a Counter holding one unit for every item yielded by seq.
func InitSeq[T comparable, C any, A Arith[C]](seq iter.Seq[T]) *Counter[T, C, A] {
	c := New[T, C, A]()
	c.UpdateSeq(seq)

	return c
}

// From is Init for built-in numeric counts.
func From[T comparable, C Number](items ...T) *Of[T, C] {
	return Init[T, C, Numeric[C]](items...)
}

// FromSeq is InitSeq for built-in numeric counts.
func FromSeq[T comparable, C Number](seq iter.Seq[T]) *Of[T, C] {
	return InitSeq[T, C, Numeric[C]](seq)
}

func (c *Counter[T, C, A]) ensure() {
	if c.m == nil {
		c.m = make(map[T]C)
	}
}

func (c *Counter[T, C, A]) increment(item T) {
	v, ok := c.m[item]
	if !ok {
		v = c.ops.Zero()
	}

	c.m[item] = c.ops.Add(v, c.ops.One())
}

// Update adds one unit to the count of every occurrence in items.
func (c *Counter[T, C, A]) Update(items ...T) {
	c.ensure()

	for _, item := range items {
		c.increment(item)
	}
}

// UpdateSeq adds one unit to the count of every item yielded by seq.
func (c *Counter[T, C, A]) UpdateSeq(seq iter.Seq[T]) {
	c.ensure()

	for item := range seq {
		c.increment(item)
	}
}

// Get returns the count of key, or the zero count if key was never counted.
// It never modifies c.
func (c *Counter[T, C, A]) Get(key T) C {
	if v, ok := c.m[key]; ok {
		return v
	}

	return c.zero
}

// Entry returns a handle to the count of key. If key is absent an entry with
// the additive identity is inserted first, so Len grows even when nothing is
// written through the handle.
func (c *Counter[T, C, A]) Entry(key T) Handle[T, C, A] {
	c.ensure()

	if _, ok := c.m[key]; !ok {
		c.m[key] = c.ops.Zero()
	}

	return Handle[T, C, A]{c: c, key: key}
}

// Zero returns the cached zero count.
func (c *Counter[T, C, A]) Zero() C {
	return c.zero
}

// Len returns the number of distinct items.
func (c *Counter[T, C, A]) Len() int {
	return len(c.m)
}

// Contains reports whether key has an entry.
func (c *Counter[T, C, A]) Contains(key T) bool {
	_, ok := c.m[key]

	return ok
}

// Total returns the sum of all counts.
func (c *Counter[T, C, A]) Total() C {
	sum := c.ops.Zero()

	for _, v := range c.m {
		sum = c.ops.Add(sum, v)
	}

	return sum
}

// TotalAs sums the counts of c after converting each to S, e.g. to total
// uint8 counts as a uint64 or integer weights as a float64.
func TotalAs[S Number, T comparable, C Number, A Arith[C]](c *Counter[T, C, A]) S {
	var sum S

	for _, v := range c.m {
		sum += S(v)
	}

	return sum
}

// Map returns the underlying map. Callers must not modify it; it may be nil
// for a Counter that never held an entry.
func (c *Counter[T, C, A]) Map() map[T]C {
	return c.m
}

// IntoMap hands the underlying map to the caller and leaves c empty.
func (c *Counter[T, C, A]) IntoMap() map[T]C {
	m := c.m
	c.m = nil

	if m == nil {
		m = make(map[T]C)
	}

	return m
}

// All iterates over the entries in unspecified order. Each call starts a new
// iteration.
func (c *Counter[T, C, A]) All() iter.Seq2[T, C] {
	return maps.All(c.m)
}

// Drain takes the entries out of c and returns an iterator over them. c is
// empty once Drain returns. Every entry is yielded at most once, even across
// several range loops over the returned iterator.
func (c *Counter[T, C, A]) Drain() iter.Seq2[T, C] {
	m := c.IntoMap()

	return func(yield func(T, C) bool) {
		for k, v := range m {
			delete(m, k)

			if !yield(k, v) {
				return
			}
		}
	}
}

// Clone returns a copy of c. Counts are copied by assignment.
func (c *Counter[T, C, A]) Clone() *Counter[T, C, A] {
	m := maps.Clone(c.m)
	if m == nil {
		m = make(map[T]C)
	}

	return &Counter[T, C, A]{m: m, zero: c.zero, ops: c.ops}
}

func (c *Counter[T, C, A]) String() string {
	return "Counter" + strings.TrimPrefix(fmt.Sprint(c.m), "map")
}

// Equal reports whether a and b hold the same entries and the same zero.
func Equal[T comparable, C comparable, A Arith[C]](a, b *Counter[T, C, A]) bool {
	return a.zero == b.zero && maps.Equal(a.m, b.m)
}

// Handle is a mutable reference to one entry of a Counter, returned by
// Entry. Writes go straight to the Counter.
type Handle[T comparable, C any, A Arith[C]] struct {
	c   *Counter[T, C, A]
	key T
}

func (h Handle[T, C, A]) Key() T {
	return h.key
}

func (h Handle[T, C, A]) Get() C {
	return h.c.m[h.key]
}

func (h Handle[T, C, A]) Set(v C) {
	h.c.ensure()
	h.c.m[h.key] = v
}

// Add adds v to the entry in place.
func (h Handle[T, C, A]) Add(v C) {
	h.c.ensure()
	h.c.m[h.key] = h.c.ops.Add(h.c.m[h.key], v)
}
