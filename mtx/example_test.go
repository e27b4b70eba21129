package mtx_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/spmat/mtx"
)

func ExampleDecode() {
	in := `%%MatrixMarket matrix coordinate real general
2 2 2
1 1 1.5
2 1 -3
`
	m, h, err := mtx.Decode(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.Rows, h.Cols, m.NNZ(), m.At(1, 0))

	if err = mtx.Encode(os.Stdout, m, mtx.WithComment("")); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 2 2 2 -3
	// %%MatrixMarket matrix coordinate real general
	// 2 2 2
	// 1 1 1.5
	// 2 1 -3
}
