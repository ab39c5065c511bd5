package filter_test

import (
	"fmt"

	"github.com/aldebaran/libalmath/dsp/filter"
)

func ExampleDigitalFilter_Process() {
	// First-order low-pass: y[n] = 0.2·x[n] + 0.8·y[n-1].
	f, err := filter.New([]float64{0.2}, []float64{0.8}, 1)
	if err != nil {
		panic(err)
	}
	for _, x := range []float64{0, 1, 1, 1} {
		fmt.Printf("%.3f\n", f.Process(x))
	}
	// Output:
	// 0.000
	// 0.200
	// 0.360
	// 0.488
}
