package collatz_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numstream/collatz"
	"github.com/katalvlaran/numstream/seq"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePath
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compute the full trajectory of 6 and render it as an arrow-joined
//	string, the way a console demo would print it.
//
// Complexity: O(k) where k is the stopping time
func ExamplePath() {
	path, err := collatz.Path(6, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprint(v)
	}
	fmt.Println("Path:", strings.Join(parts, " -> "))
	// Output:
	// Path: 6 -> 3 -> 10 -> 5 -> 16 -> 8 -> 4 -> 2 -> 1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSteps
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Ask only for the stopping time of the famously long orbit of 27,
//	without materializing the 112-element path.
//
// Complexity: O(k) time, O(1) memory
func ExampleSteps() {
	steps, _ := collatz.Steps(27, nil)
	fmt.Println("27 reaches 1 after", steps, "steps")
	// Output:
	// 27 reaches 1 after 111 steps
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWalk
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compose the lazy walk with seq combinators: count how many values in
//	the orbit of 27 exceed 1000, without building the path slice.
//
// Use case:
//
//	Streaming analysis of trajectories — peak hunting, threshold counts.
//
// Complexity: O(k) time, O(1) memory
func ExampleWalk() {
	high := seq.Filter(collatz.Walk(27), func(v int64) bool { return v > 1000 })
	fmt.Println("values above 1000:", seq.Count(high))
	// Output:
	// values above 1000: 27
}
