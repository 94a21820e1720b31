package orderbook

import (
	"testing"

	"github.com/matryer/is"
)

func TestLimitTree_GetOrCreate_Dedup(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()

	l1 := tree.GetOrCreate(100)
	l2 := tree.GetOrCreate(100)

	is.True(l1 == l2) // duplicate price must return the same node
	is.Equal(tree.Len(), 1)
}

func TestLimitTree_GetOrCreate_Rebalance(t *testing.T) {
	// Scenario 2 (spec §8): insert 100, 200, 300 in order; after the third
	// insert the root is 200 with left=100, right=300, both children at
	// height 0 and a root balance factor of 0.
	is := is.New(t)
	tree := NewLimitTree[int]()

	tree.GetOrCreate(100)
	tree.GetOrCreate(200)
	root := tree.GetOrCreate(300)
	_ = root

	realRoot := tree.sentinel.Right
	is.Equal(realRoot.Price, Price(200))
	is.True(realRoot.Left != nil)
	is.Equal(realRoot.Left.Price, Price(100))
	is.True(realRoot.Right != nil)
	is.Equal(realRoot.Right.Price, Price(300))
	is.Equal(realRoot.Left.height, 0)
	is.Equal(realRoot.Right.height, 0)
	is.Equal(realRoot.balanceFactor(), 0)
}

func TestLimitTree_Find(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()
	tree.GetOrCreate(50)
	tree.GetOrCreate(25)
	tree.GetOrCreate(75)

	found := tree.Find(25)
	is.True(found != nil)
	is.Equal(found.Price, Price(25))

	is.True(tree.Find(999) == nil)
}

func TestLimitTree_MinMax(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()
	is.True(tree.Min() == nil)
	is.True(tree.Max() == nil)

	for _, p := range []Price{50, 10, 90, 30, 70} {
		tree.GetOrCreate(p)
	}

	is.Equal(tree.Min().Price, Price(10))
	is.Equal(tree.Max().Price, Price(90))
}

func TestLimitTree_Remove_NoChildren(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()
	l := tree.GetOrCreate(50)

	err := tree.Remove(l)
	is.NoErr(err)
	is.Equal(tree.Len(), 0)
	is.True(tree.Min() == nil)
}

func TestLimitTree_Remove_OneChild(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()
	tree.GetOrCreate(50)
	child := tree.GetOrCreate(25)

	is.NoErr(tree.Remove(tree.Find(50)))
	is.Equal(tree.Len(), 1)
	is.Equal(tree.sentinel.Right, child)
}

func TestLimitTree_Remove_TwoChildren(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()
	for _, p := range []Price{50, 25, 75, 60, 90} {
		tree.GetOrCreate(p)
	}

	is.NoErr(tree.Remove(tree.Find(50)))
	is.Equal(tree.Len(), 4)
	is.True(tree.Find(50) == nil)

	// remaining prices still reachable in order
	is.Equal(tree.Min().Price, Price(25))
	is.Equal(tree.Max().Price, Price(90))
	is.True(tree.Find(60) != nil)
	is.True(tree.Find(75) != nil)
}

func TestLimitTree_Remove_PreservesPointerIdentity(t *testing.T) {
	// spec §4.2/§9: removal must use structural relinking, not a value
	// copy, so a live reference to the successor survives the rebalance
	// with its own identity (and price) intact.
	is := is.New(t)
	tree := NewLimitTree[int]()
	for _, p := range []Price{50, 25, 75, 60} {
		tree.GetOrCreate(p)
	}
	succ := tree.Find(60) // level.Right's minimum when removing 50

	is.NoErr(tree.Remove(tree.Find(50)))

	is.Equal(succ.Price, Price(60)) // identity preserved, not overwritten
	is.Equal(tree.sentinel.Right, succ)
}

func TestLimitTree_Remove_NotInTree(t *testing.T) {
	is := is.New(t)
	treeA := NewLimitTree[int]()
	treeB := NewLimitTree[int]()

	orphan := treeB.GetOrCreate(10)
	err := treeA.Remove(orphan)
	is.Equal(err, ErrNotInTree)
}

func TestLimitTree_RandomizedInsertRemove_StaysBalanced(t *testing.T) {
	is := is.New(t)
	tree := NewLimitTree[int]()

	prices := []Price{10, 5, 20, 3, 7, 15, 25, 1, 4, 6, 8, 12, 17, 22, 30}
	for _, p := range prices {
		tree.GetOrCreate(p)
	}

	var checkBalanced func(l *Limit[int])
	checkBalanced = func(l *Limit[int]) {
		if l == nil {
			return
		}
		bf := l.balanceFactor()
		is.True(bf >= -1 && bf <= 1)
		checkBalanced(l.Left)
		checkBalanced(l.Right)
	}
	checkBalanced(tree.sentinel.Right)

	for _, p := range []Price{5, 20, 1, 30, 10} {
		is.NoErr(tree.Remove(tree.Find(p)))
		checkBalanced(tree.sentinel.Right)
	}
}
