// areaplot - Monte-Carlo Area Deviation Plotter
//
// areaplot reads the results of a Monte-Carlo area estimation experiment and
// charts the deviation from the exact area against the number of points.
package main

import (
	"os"

	"github.com/ccollicutt/areaplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
