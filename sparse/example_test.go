// SPDX-License-Identifier: MIT
package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// ExampleMul multiplies a 2×2 matrix by the identity.
func ExampleMul() {
	A, _ := sparse.FromEntries(2, 2,
		sparse.Entry{Row: 0, Col: 0, Value: 1},
		sparse.Entry{Row: 0, Col: 1, Value: 2},
		sparse.Entry{Row: 1, Col: 0, Value: 3},
		sparse.Entry{Row: 1, Col: 1, Value: 4},
	)
	I, _ := sparse.NewIdentity(2)

	p, err := sparse.Mul(A, I)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)

	// Output:
	// Matrix(2x2){(0,0)=1 (0,1)=2 (1,0)=3 (1,1)=4}
}

// ExampleSub shows zero-suppression: the cancelled diagonal cell disappears.
func ExampleSub() {
	A, _ := sparse.FromEntries(2, 2,
		sparse.Entry{Row: 0, Col: 0, Value: 1},
		sparse.Entry{Row: 1, Col: 1, Value: 4},
	)
	I, _ := sparse.NewIdentity(2)

	d, _ := sparse.Sub(A, I)
	fmt.Println(d, d.Len())

	// Output:
	// Matrix(2x2){(1,1)=3} 1
}
