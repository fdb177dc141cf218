// interpoly reads sample points from a config file, fits the interpolating
// polynomial through them and prints it sampled over a range.
//
// Usage:
//
//	interpoly points.cfg
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Maxime2/interpoly"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Expects exactly one argument.")
	}

	c, err := ReadConfigFile(os.Args[1])
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := run(os.Stdout, c); err != nil {
		log.Fatal(err.Error())
	}
}

func run(w io.Writer, c *Config) error {
	f, err := interpoly.NewFromPoints(c.Points.X, c.Points.Y)
	if err != nil {
		return err
	}

	xs, err := interpoly.Grid(c.Sample.Xmin, c.Sample.Xmax, c.Sample.N)
	if err != nil {
		return err
	}
	for _, x := range xs {
		fmt.Fprintf(w, "%g\t%g\n", x, f.F(x))
	}

	ymin, ymax, err := f.YRange(c.Sample.Xmin, c.Sample.Xmax, c.Sample.N)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# y range: [%g, %g]\n", ymin, ymax)
	return nil
}
