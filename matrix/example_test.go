package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spmat/matrix"
)

// ExampleMultiply multiplies by the identity and prints the product and its trace.
func ExampleMultiply() {
	a, _ := matrix.FromEntries(2, 2, []matrix.Entry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 1, Value: 3},
	})
	id, _ := matrix.NewIdentity(2)

	c, _ := matrix.Multiply(a, id)
	fmt.Print(c)
	fmt.Println(matrix.TraceOf(c))
	// Output:
	// Sparse(2×2, nnz=3)
	// [0, 0] = 1
	// [0, 1] = 2
	// [1, 1] = 3
	// 4
}

// ExampleEqual shows the merged comparison used to check P·P == 2·P for P = 2I.
func ExampleEqual() {
	p, _ := matrix.NewDiagonal([]float64{2, 2})
	pp, _ := matrix.Multiply(p, p)
	twoP, _ := matrix.Scale(p, 2)

	fmt.Println(matrix.Equal(pp, twoP, matrix.DefaultTolerance))
	// Output: true
}

// ExampleMultiplyPairs shows that the unmerged product keeps every term.
func ExampleMultiplyPairs() {
	a, _ := matrix.TripletsOf(1, 2, []matrix.Entry{{Row: 0, Col: 0, Value: 2}, {Row: 0, Col: 1, Value: 3}})
	b, _ := matrix.TripletsOf(2, 1, []matrix.Entry{{Row: 0, Col: 0, Value: 5}, {Row: 1, Col: 0, Value: 7}})

	c, _ := matrix.MultiplyPairs(a, b)
	for _, e := range c.Entries() {
		fmt.Println(e.Row, e.Col, e.Value)
	}
	// Output:
	// 0 0 10
	// 0 0 21
}
