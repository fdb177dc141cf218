package main

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

type PointsConfig struct {
	// Required. Paired in order of appearance.
	X, Y []float64
}

type SampleConfig struct {
	// Required
	Xmin, Xmax float64

	// Optional
	N int
}

type Config struct {
	Points PointsConfig
	Sample SampleConfig
}

// CheckInit validates the config and fills in defaults.
func (c *Config) CheckInit() error {
	if len(c.Points.X) != len(c.Points.Y) {
		return fmt.Errorf(
			"[points] has %d x values but %d y values",
			len(c.Points.X), len(c.Points.Y),
		)
	} else if len(c.Points.X) == 0 {
		return fmt.Errorf("[points] must contain at least one point")
	}

	if c.Sample.Xmin > c.Sample.Xmax {
		return fmt.Errorf(
			"[sample] xmin, %g, is larger than xmax, %g",
			c.Sample.Xmin, c.Sample.Xmax,
		)
	}
	if c.Sample.N == 0 {
		c.Sample.N = 11
	} else if c.Sample.N < 0 {
		return fmt.Errorf("[sample] given a negative n, %d", c.Sample.N)
	}

	return nil
}

func ReadConfigFile(path string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadFileInto(c, path); err != nil {
		return nil, err
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReadConfigString(str string) (*Config, error) {
	c := &Config{}
	if err := gcfg.ReadStringInto(c, str); err != nil {
		return nil, err
	}
	if err := c.CheckInit(); err != nil {
		return nil, err
	}
	return c, nil
}
