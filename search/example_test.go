package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/search"
)

// ExampleBinary finds a value in a sorted slice in O(log n).
func ExampleBinary() {
	sorted := []int{1, 3, 4, 6, 7, 8, 10, 14}

	idx, ok := search.Binary(sorted, 6)
	fmt.Println(idx, ok)

	idx, ok = search.Binary(sorted, 13)
	fmt.Println(idx, ok)
	// Output:
	// 3 true
	// -1 false
}

// ExampleLinear scans unordered input for the first match.
func ExampleLinear() {
	items := []string{"pear", "apple", "fig", "apple"}

	idx, ok := search.Linear(items, "apple")
	fmt.Println(idx, ok)
	// Output:
	// 1 true
}
