// rcc/clocks.go
package rcc

import "f4hal-go/freq"

// Clocks is the frozen result of a committed clock configuration: the
// single source of truth for what frequency each bus actually runs at.
// Holding one is proof the tree has been programmed. There is no way to
// change it; reconfiguring means a fresh Constrain and another Freeze.
type Clocks struct {
	sysclk freq.Hertz
	hclk   freq.Hertz
	pclk1  freq.Hertz
	pclk2  freq.Hertz
	ppre1  uint8
	ppre2  uint8
}

// Sysclk returns the system clock frequency.
func (c Clocks) Sysclk() freq.Hertz { return c.sysclk }

// HCLK returns the core/memory bus frequency.
func (c Clocks) HCLK() freq.Hertz { return c.hclk }

// PCLK1 returns the low-speed peripheral bus frequency.
func (c Clocks) PCLK1() freq.Hertz { return c.pclk1 }

// PCLK2 returns the high-speed peripheral bus frequency.
func (c Clocks) PCLK2() freq.Hertz { return c.pclk2 }

// PPRE1 returns the APB1 divisor as programmed (1, 2, 4, 8 or 16), not
// its bit code. Timer drivers need the divisor to apply the APB timer
// clock doubling rule.
func (c Clocks) PPRE1() uint8 { return c.ppre1 }

// PPRE2 returns the APB2 divisor as programmed, not its bit code.
func (c Clocks) PPRE2() uint8 { return c.ppre2 }
