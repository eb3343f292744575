package avl

import (
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeAddFind(t *testing.T) {
	tree := NewOrderedTree[int, string]()

	keys := []int{50, 25, 75, 10, 30, 60, 90, 5, 28, 77}
	for _, k := range keys {
		node, err := tree.Add(k, "v")
		require.NoError(t, err)
		require.NotNil(t, node)
		require.Equal(t, k, node.Key())
	}
	require.Equal(t, len(keys), tree.Size())

	for _, k := range keys {
		node := tree.Find(k)
		require.NotNil(t, node, "key %d", k)
		require.Equal(t, k, node.Key())
		require.Equal(t, "v", node.Value())
	}
	require.Nil(t, tree.Find(42))
	require.True(t, tree.Contains(30))
	require.False(t, tree.Contains(31))
	require.Equal(t, 5, tree.MostLeft().Key())
}

func TestTreeAddDuplicate(t *testing.T) {
	tree := NewOrderedTree[int, int]()

	_, err := tree.Add(1, 10)
	require.NoError(t, err)
	_, err = tree.Add(1, 20)
	require.ErrorIs(t, err, ErrorTreeNodeDuplicate)
	require.Equal(t, 1, tree.Size())
	require.Equal(t, 10, tree.Find(1).Value())
}

func TestTreeInOrder(t *testing.T) {
	tree := NewOrderedTree[int, int]()

	rng := rand.New(rand.NewSource(1))
	for _, k := range rng.Perm(200) {
		_, err := tree.Add(k, k*2)
		require.NoError(t, err)
	}

	var visited []int
	tree.IterateInOrder(func(v int) bool {
		visited = append(visited, v/2)
		return false
	})
	require.Len(t, visited, 200)
	require.True(t, sort.IntsAreSorted(visited))
}

func TestTreeInOrderEarlyStop(t *testing.T) {
	tree := NewOrderedTree[int, int]()
	for i := 0; i < 100; i++ {
		_, err := tree.Add(i, i)
		require.NoError(t, err)
	}

	var visited []int
	tree.IterateInOrder(func(v int) bool {
		visited = append(visited, v)
		return len(visited) == 7
	})
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, visited)
}

func TestTreeRemove(t *testing.T) {
	newTree := func(keys ...int) *Tree[int, int] {
		tree := NewOrderedTree[int, int]()
		for _, k := range keys {
			_, err := tree.Add(k, k)
			require.NoError(t, err)
		}
		return &tree
	}

	inOrder := func(tree *Tree[int, int]) (keys []int) {
		tree.IterateInOrder(func(v int) bool {
			keys = append(keys, v)
			return false
		})
		return
	}

	t.Run("leaf", func(t *testing.T) {
		tree := newTree(50, 25, 75)
		v, err := tree.Remove(25)
		require.NoError(t, err)
		require.Equal(t, 25, v)
		require.Equal(t, []int{50, 75}, inOrder(tree))
		require.Equal(t, 50, tree.MostLeft().Key())
	})

	t.Run("single child", func(t *testing.T) {
		tree := newTree(50, 25, 75, 80)
		_, err := tree.Remove(75)
		require.NoError(t, err)
		require.Equal(t, []int{25, 50, 80}, inOrder(tree))
	})

	t.Run("two children", func(t *testing.T) {
		tree := newTree(50, 25, 75, 60, 90, 55, 65)
		_, err := tree.Remove(75)
		require.NoError(t, err)
		require.Equal(t, []int{25, 50, 55, 60, 65, 90}, inOrder(tree))
	})

	t.Run("root", func(t *testing.T) {
		tree := newTree(50, 25, 75)
		_, err := tree.Remove(50)
		require.NoError(t, err)
		require.Equal(t, []int{25, 75}, inOrder(tree))
	})

	t.Run("most left", func(t *testing.T) {
		tree := newTree(50, 25, 75, 10)
		_, err := tree.Remove(10)
		require.NoError(t, err)
		require.Equal(t, 25, tree.MostLeft().Key())
		_, err = tree.Remove(25)
		require.NoError(t, err)
		require.Equal(t, 50, tree.MostLeft().Key())
	})

	t.Run("missing", func(t *testing.T) {
		tree := newTree(50, 25, 75)
		_, err := tree.Remove(42)
		require.ErrorIs(t, err, ErrorTreeNodeNotFound)
		require.Equal(t, 3, tree.Size())
	})

	t.Run("last node", func(t *testing.T) {
		tree := newTree(50)
		_, err := tree.Remove(50)
		require.NoError(t, err)
		require.Equal(t, 0, tree.Size())
		require.Nil(t, tree.MostLeft())
		_, err = tree.Remove(50)
		require.ErrorIs(t, err, ErrorTreeNodeNotFound)
	})
}

func TestTreeRandomChurn(t *testing.T) {
	tree := NewOrderedTree[int, int]()
	rng := rand.New(rand.NewSource(7))
	reference := map[int]bool{}

	for i := 0; i < 5000; i++ {
		k := rng.Intn(500)
		if reference[k] {
			_, err := tree.Remove(k)
			require.NoError(t, err)
			delete(reference, k)
		} else {
			_, err := tree.Add(k, k)
			require.NoError(t, err)
			reference[k] = true
		}
	}

	var want []int
	for k := range reference {
		want = append(want, k)
	}
	sort.Ints(want)

	var got []int
	tree.IterateInOrder(func(v int) bool {
		got = append(got, v)
		return false
	})
	require.Equal(t, want, got)
	require.Equal(t, len(want), tree.Size())
	if len(want) > 0 {
		require.Equal(t, want[0], tree.MostLeft().Key())
	}
}

// Node handles must survive rebalancing of unrelated keys: the order
// book stores per-order pointers to price level nodes.
func TestTreeNodeHandleStability(t *testing.T) {
	tree := NewOrderedTree[int, int]()

	node, err := tree.Add(500, 500)
	require.NoError(t, err)

	// Ascending inserts force rotations all the way up.
	for i := 501; i < 600; i++ {
		_, err := tree.Add(i, i)
		require.NoError(t, err)
	}
	for i := 499; i > 400; i-- {
		_, err := tree.Add(i, i)
		require.NoError(t, err)
	}
	for i := 402; i < 600; i += 2 {
		if i == 500 {
			continue
		}
		_, err := tree.Remove(i)
		require.NoError(t, err)
	}

	require.Equal(t, 500, node.Key())
	require.Equal(t, 500, node.Value())
	require.Same(t, node, tree.Find(500))
}

func TestTreeBalanced(t *testing.T) {
	tree := NewOrderedTree[int, int]()
	for i := 0; i < 1024; i++ {
		_, err := tree.Add(i, i)
		require.NoError(t, err)
	}
	// An AVL tree of n nodes has height at most ~1.44*log2(n).
	require.LessOrEqual(t, tree.root.height, 14)
}

func TestTreeReversedComparator(t *testing.T) {
	tree := NewTree[int, int](func(a, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	for _, k := range []int{10, 30, 20} {
		_, err := tree.Add(k, k)
		require.NoError(t, err)
	}

	require.Equal(t, 30, tree.MostLeft().Key())
	var got []int
	tree.IterateInOrder(func(v int) bool {
		got = append(got, v)
		return false
	})
	require.Equal(t, []int{30, 20, 10}, got)
}

func TestTreePooled(t *testing.T) {
	pool := &sync.Pool{New: func() any {
		return &Node[int, int]{}
	}}
	tree := NewTreePooled[int, int](func(a, b int) int { return a - b }, pool)

	for i := 0; i < 64; i++ {
		_, err := tree.Add(i, i)
		require.NoError(t, err)
	}
	for i := 0; i < 32; i++ {
		_, err := tree.Remove(i)
		require.NoError(t, err)
	}
	for i := 0; i < 16; i++ {
		_, err := tree.Add(i, i)
		require.NoError(t, err)
	}

	var got []int
	tree.IterateInOrder(func(v int) bool {
		got = append(got, v)
		return false
	})
	require.Len(t, got, 48)
	require.True(t, sort.IntsAreSorted(got))

	tree.Clear()
	require.Equal(t, 0, tree.Size())
	require.Nil(t, tree.MostLeft())
	_, err := tree.Add(5, 5)
	require.NoError(t, err)
	require.Equal(t, 5, tree.MostLeft().Key())
}
