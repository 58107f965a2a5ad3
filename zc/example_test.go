package zc_test

import (
	"fmt"

	"github.com/rawbytedev/nsandbox/zc"
)

func ExampleView() {
	owned := []int16{100, 250, 300}
	p := zc.First(owned)

	view := zc.View(p, 2)
	owned[0] = -1
	fmt.Println(view)
	// Output: [-1 250]
}
