// SPDX-License-Identifier: MIT

package evaluator_test

import (
	"fmt"

	"github.com/katalvlaran/ssvepcca/evaluator"
)

// ExampleITR prices a 40-target speller at 90% accuracy with a 1 s window
// and a 0.5 s break.
func ExampleITR() {
	itr, err := evaluator.ITR(1, 0.5, 0, 0, 40, 0.9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.2f bits/min\n", itr)
	// Output:
	// 172.98 bits/min
}

func ExampleLeaveOneBlockOut() {
	blocks := []int{0, 0, 1, 1, 2, 2}
	test, train, err := evaluator.LeaveOneBlockOut(3, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(evaluator.SelectBlocks(blocks, train), evaluator.SelectBlocks(blocks, test))
	// Output:
	// [0 1 4 5] [2 3]
}
