// rcc/source.go
package rcc

import (
	"f4hal-go/freq"
	"f4hal-go/x/mathx"
)

// HSIFrequency is the internal RC oscillator frequency.
const HSIFrequency = 16 * freq.MHz

type sourceKind uint8

const (
	sourceHSI sourceKind = iota
	sourceHSE
)

// ClockSource selects the oscillator driving the clock tree. The zero
// value is the internal oscillator.
type ClockSource struct {
	kind sourceKind
	hz   freq.Hertz
}

// HSI selects the internal 16MHz RC oscillator.
func HSI() ClockSource { return ClockSource{} }

// HSE selects an external oscillator of the given frequency. The raw
// value is not checked against the part's oscillator operating range:
// derived frequencies are validated at commit, the crystal choice is the
// board designer's.
func HSE(hz freq.Hertz) ClockSource {
	return ClockSource{kind: sourceHSE, hz: hz}
}

// Frequency returns the oscillator frequency the source provides.
func (s ClockSource) Frequency() freq.Hertz {
	if s.kind == sourceHSE {
		return s.hz
	}
	return HSIFrequency
}

// External reports whether the source is the external oscillator.
func (s ClockSource) External() bool { return s.kind == sourceHSE }

// PLLM returns the input divider the PLL stage uses for s: fixed 8 for
// the internal oscillator, otherwise the smallest divider bringing the
// external frequency to at most 2MHz.
func (s ClockSource) PLLM() uint32 {
	if s.kind == sourceHSE {
		return mathx.CeilDiv(uint32(s.hz), 2_000_000)
	}
	return 8
}
