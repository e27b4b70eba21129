package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spmat/builder"
)

// ExampleRandomSparse generates the benchmark-shaped matrix: 10 entries per row.
func ExampleRandomSparse() {
	m, err := builder.RandomSparse(100, 100, builder.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.NNZ(), m.RowNNZ(0), m.Has(7, 7))
	// Output: 1000 10 true
}
