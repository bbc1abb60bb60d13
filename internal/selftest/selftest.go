// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selftest runs the fixed conversion check suite invoked when the
// CLI starts without arguments.
package selftest

import (
	"fmt"
	"io"
	"math"

	"github.com/pdiddy/unitconv/internal/convert"
)

// check is one conversion compared against a known-good value.
type check struct {
	name string
	got  func() (float64, error)
	want float64
	tol  float64
}

var checks = []check{
	{
		name: "pressure 100 psi -> bar",
		got:  func() (float64, error) { return convert.Pressure(100, "psi", "bar") },
		want: 6.8948, tol: 0.001,
	},
	{
		name: "pressure 1 bar -> kpa",
		got:  func() (float64, error) { return convert.Pressure(1, "bar", "kpa") },
		want: 100, tol: 0.001,
	},
	{
		name: "pressure round trip psi -> pa -> psi",
		got:  roundTrip(convert.Pressure, 12.5, "psi", "pa"),
		want: 12.5, tol: 12.5 * 1e-6,
	},
	{
		name: "temperature 212 f -> c",
		got:  func() (float64, error) { return convert.Temperature(212, "f", "c") },
		want: 100, tol: 0.01,
	},
	{
		name: "temperature 0 c -> k",
		got:  func() (float64, error) { return convert.Temperature(0, "c", "k") },
		want: 273.15, tol: 0.01,
	},
	{
		name: "temperature round trip f -> k -> f",
		got:  roundTrip(convert.Temperature, 98.6, "f", "k"),
		want: 98.6, tol: 98.6 * 1e-6,
	},
	{
		name: "flow 1 gpm -> lpm",
		got:  func() (float64, error) { return convert.Flow(1, "gpm", "lpm") },
		want: 3.78541, tol: 0.001,
	},
	{
		name: "flow 1 m3h -> lpm",
		got:  func() (float64, error) { return convert.Flow(1, "m3h", "lpm") },
		want: 16.6667, tol: 0.001,
	},
	{
		name: "flow round trip gpm -> m3/h -> gpm",
		got:  roundTrip(convert.Flow, 50, "gpm", "m3/h"),
		want: 50, tol: 50 * 1e-6,
	},
}

// roundTrip converts value there and back through fn.
func roundTrip(fn func(float64, string, string) (float64, error), value float64, from, to string) func() (float64, error) {
	return func() (float64, error) {
		out, err := fn(value, from, to)
		if err != nil {
			return 0, err
		}
		return fn(out, to, from)
	}
}

// Result summarizes a self-test run.
type Result struct {
	Passed int
	Failed int
}

// Total returns the total number of checks executed.
func (r Result) Total() int { return r.Passed + r.Failed }

// OK reports whether every check passed.
func (r Result) OK() bool { return r.Failed == 0 }

// Run executes every check, printing one status line per check and a
// summary to w.
func Run(w io.Writer) Result {
	var res Result
	for _, c := range checks {
		got, err := c.got()
		switch {
		case err != nil:
			fmt.Fprintf(w, "FAIL %s (%v)\n", c.name, err)
			res.Failed++
		case math.Abs(got-c.want) > c.tol:
			fmt.Fprintf(w, "FAIL %s (got %v, want %v ±%v)\n", c.name, got, c.want, c.tol)
			res.Failed++
		default:
			fmt.Fprintf(w, "ok   %s\n", c.name)
			res.Passed++
		}
	}
	fmt.Fprintf(w, "\nSelf-test summary: %d passed, %d failed (total: %d)\n",
		res.Passed, res.Failed, res.Total())
	return res
}
