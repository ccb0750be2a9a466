package window_test

import (
	"fmt"

	"github.com/infomuscp/goeyesweb/window"
)

func ExampleSlidingWindow() {
	w, err := window.New(3, 2)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 5; i++ {
		_ = w.AppendAt([]float64{float64(i), float64(i * 10)}, float64(i))
	}

	f := w.Snapshot()
	fmt.Println("rows:", f.Rows)
	for i := 0; i < f.Rows; i++ {
		fmt.Println(f.Row(i))
	}
	// Output:
	// rows: 3
	// [2 20]
	// [3 30]
	// [4 40]
}
