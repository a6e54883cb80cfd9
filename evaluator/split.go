// SPDX-License-Identifier: MIT
// Package evaluator: block-wise train/test splits.

package evaluator

// LeaveOneBlockOut returns the held-out block and the remaining training
// blocks, in ascending order, for a dataset of blockNum blocks.
//
// Errors: ErrBadParam when blockNum < 2 or block ∉ [0, blockNum).
func LeaveOneBlockOut(blockNum, block int) (test, train []int, err error) {
	if blockNum < 2 || block < 0 || block >= blockNum {
		return nil, nil, evaluatorErrorf(opLeaveOneBlock, ErrBadParam)
	}
	train = make([]int, 0, blockNum-1)
	for b := 0; b < blockNum; b++ {
		if b != block {
			train = append(train, b)
		}
	}

	return []int{block}, train, nil
}

// SelectBlocks returns the indices of the trials whose block (blockOf[i]) is
// listed in blocks, in trial order.
func SelectBlocks(blockOf, blocks []int) []int {
	want := make(map[int]struct{}, len(blocks))
	for _, b := range blocks {
		want[b] = struct{}{}
	}
	var out []int
	for i, b := range blockOf {
		if _, ok := want[b]; ok {
			out = append(out, i)
		}
	}

	return out
}
