package counter

import "unsafe"

// Borrowed is a view of a key of type T. Borrow returns a T that compares
// equal to the owned key; it may share memory with the view because map
// lookups never retain the key they are given.
type Borrowed[T comparable] interface {
	Borrow() T
}

// ToOwned is a Borrowed view that can also produce an independent T, safe to
// keep as a map key after the view changes.
type ToOwned[T comparable] interface {
	Borrowed[T]
	ToOwned() T
}

// Bytes views a byte slice as a string key.
type Bytes []byte

// Borrow returns a string sharing b's memory. It must not outlive b or be
// used after b is modified.
func (b Bytes) Borrow() string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ToOwned copies b into a new string.
func (b Bytes) ToOwned() string {
	return string(b)
}

// String is the trivial view of a string key.
type String string

func (s String) Borrow() string { return string(s) }

func (s String) ToOwned() string { return string(s) }

// GetBorrowed is Get for a borrowed view of the key. It never copies the key
// and never inserts.
func GetBorrowed[T comparable, C any, A Arith[C], Q Borrowed[T]](c *Counter[T, C, A], key Q) C {
	return c.Get(key.Borrow())
}

// EntryOwned is Entry for a borrowed view of the key. The key is converted
// with ToOwned before it is stored, so the view may be reused afterwards.
func EntryOwned[T comparable, C any, A Arith[C], Q ToOwned[T]](c *Counter[T, C, A], key Q) Handle[T, C, A] {
	return c.Entry(key.ToOwned())
}
