package bst_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/bst"
)

// ExampleTree_InOrderKeys demonstrates the canonical build-and-enumerate
// flow on eight integer keys.
func ExampleTree_InOrderKeys() {
	tr := bst.New[int]()
	for _, k := range []int{8, 3, 10, 1, 6, 14, 4, 7} {
		if err := tr.Insert(k); err != nil {
			fmt.Println("insert:", err)
			return
		}
	}

	fmt.Println(tr.InOrderKeys())

	ok, _ := tr.Contains(6)
	fmt.Println("contains 6:", ok)
	ok, _ = tr.Contains(13)
	fmt.Println("contains 13:", ok)
	// Output:
	// [1 3 4 6 7 8 10 14]
	// contains 6: true
	// contains 13: false
}

// ExampleTree_duplicates shows the explicit duplicate policy:
// equal keys are kept and enumerate adjacently.
func ExampleTree_duplicates() {
	tr := bst.New[string]()
	for _, s := range []string{"pear", "apple", "pear", "fig"} {
		_ = tr.Insert(s)
	}

	fmt.Println(tr.InOrderKeys())
	fmt.Println("len:", tr.Len())
	// Output:
	// [apple fig pear pear]
	// len: 4
}

// ExampleNewFunc orders composite keys with a custom comparator.
func ExampleNewFunc() {
	type point struct{ x, y int }
	byDistance := func(a, b point) int {
		return (a.x*a.x + a.y*a.y) - (b.x*b.x + b.y*b.y)
	}

	tr := bst.NewFunc[point](byDistance)
	for _, p := range []point{{3, 4}, {1, 1}, {0, 2}} {
		_ = tr.Insert(p)
	}

	for _, p := range tr.InOrderKeys() {
		fmt.Printf("(%d,%d) ", p.x, p.y)
	}
	fmt.Println()
	// Output:
	// (1,1) (0,2) (3,4)
}

// ExampleWithOnInsert instruments insertion depth, making the
// degenerate sorted-input shape visible.
func ExampleWithOnInsert() {
	tr := bst.New[int](bst.WithOnInsert(func(k, depth int) {
		fmt.Printf("%d landed at depth %d\n", k, depth)
	}))
	for _, k := range []int{1, 2, 3} {
		_ = tr.Insert(k)
	}
	// Output:
	// 1 landed at depth 0
	// 2 landed at depth 1
	// 3 landed at depth 2
}
