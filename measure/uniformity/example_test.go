package uniformity_test

import (
	"fmt"

	"github.com/cwbudde/algo-raspir/measure/uniformity"
)

func ExampleThresholds_Classify() {
	th := uniformity.DefaultThresholds()
	fmt.Println(th.Classify(0.9, 0.001, 0.001, 0.3))
	fmt.Println(th.Classify(0.4, 0.001, 0.001, 0.3))
	// Output:
	// uniform
	// nonuniform
}

func ExampleEuclideanScore() {
	fmt.Println(uniformity.EuclideanScore(3000))
	// Output:
	// 0.333
}
