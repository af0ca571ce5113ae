// Package hashbag is a uint32 occurrence bag over any comparable key.
package hashbag

import counter "github.com/zmrl010/counter"

type HashBag[K comparable] = counter.Of[K, uint32]

func New[K comparable]() *HashBag[K] {
	return counter.From[K, uint32]()
}

func Insert[K comparable](bag *HashBag[K], keys ...K) {
	bag.Update(keys...)
}

func Count[K comparable](bag *HashBag[K], key K) uint32 {
	return bag.Get(key)
}
