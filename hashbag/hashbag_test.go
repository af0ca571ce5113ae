package hashbag_test

import (
	"testing"

	"github.com/zmrl010/counter/hashbag"

	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	bag := hashbag.New[string]()

	hashbag.Insert(bag, "main", "init", "main")

	require.Equal(t, uint32(2), hashbag.Count(bag, "main"))
	require.Equal(t, uint32(1), hashbag.Count(bag, "init"))
	require.Equal(t, uint32(0), hashbag.Count(bag, "exit"))
	require.Equal(t, uint32(3), bag.Total())
}

func TestZeroValueBag(t *testing.T) {
	var bag hashbag.HashBag[int]

	hashbag.Insert(&bag, 7)

	require.Equal(t, uint32(1), hashbag.Count(&bag, 7))
	require.Equal(t, 1, bag.Len())
}
