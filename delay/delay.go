// delay/delay.go
// Package delay provides coarse busy-wait timing scaled to the core
// clock, for the stretches of bring-up where no timer is running yet.
package delay

import (
	"f4hal-go/freq"
	"f4hal-go/rcc"
)

// Sleeper sleeps in units derived from the frozen AHB clock.
type Sleeper struct {
	hclk freq.Hertz
}

func New(clk rcc.Clocks) *Sleeper {
	return &Sleeper{hclk: clk.HCLK()}
}
