package geom_test

import (
	"fmt"

	"github.com/soleren/mandala/pkg/geom"
)

func ExampleCalibration_TargetAngle() {
	c := geom.DefaultCalibration
	fmt.Printf("%.4f\n", c.TargetAngle(0))
	// Output:
	// 233.4375
}

func ExampleMidpoint() {
	// Adjacent sectors usually average plainly.
	fmt.Println(geom.Midpoint(10, 20))
	// Sectors straddling the 0/360 seam take the short way around.
	fmt.Println(geom.Midpoint(358, 2))
	// Output:
	// 15
	// 0
}
