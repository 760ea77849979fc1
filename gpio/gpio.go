// gpio/gpio.go
// Package gpio configures and drives the F40x GPIO ports.
package gpio

import (
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

// Mode selects the pin function.
type Mode uint8

const (
	ModeInput Mode = iota
	ModeOutput
	ModeAlternate
	ModeAnalog
)

// Pull selects the pin's resistor network.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Speed selects the output driver slew rate.
type Speed uint8

const (
	SpeedLow Speed = iota
	SpeedMedium
	SpeedFast
	SpeedHigh
)

// Config describes one pin's setup. The zero value is a floating input.
type Config struct {
	Mode  Mode
	Pull  Pull
	Speed Speed
	AF    uint8 // alternate function number, with ModeAlternate
}

// Port wraps one GPIO block with its bus clock gated on.
type Port struct {
	p *stm32.GPIO_Type
}

// NewPort opens the port's clock gate and returns the port handle.
// enable is the port's RCC_AHB1ENR gate bit.
func NewPort(block *stm32.GPIO_Type, ahb1 *rcc.AHB1, enable uint32) *Port {
	ahb1.Enable(enable)
	return &Port{p: block}
}

// Pin returns the numbered line of the port, 0..15.
func (p *Port) Pin(n uint8) Pin {
	if n > 15 {
		panic("gpio: pin number out of range")
	}
	return Pin{p: p.p, n: n}
}

// Pin is one line of a port.
type Pin struct {
	p *stm32.GPIO_Type
	n uint8
}

// Configure programs the pin's mode, resistor, speed and alternate
// function, field by field, leaving sibling pins alone.
func (p Pin) Configure(cfg Config) {
	if cfg.AF > 15 {
		panic("gpio: alternate function out of range")
	}
	shift := 2 * uint32(p.n)
	p.p.MODER.ReplaceBits(uint32(cfg.Mode)<<shift, 0b11<<shift, 0)
	p.p.PUPDR.ReplaceBits(uint32(cfg.Pull)<<shift, 0b11<<shift, 0)
	p.p.OSPEEDR.ReplaceBits(uint32(cfg.Speed)<<shift, 0b11<<shift, 0)
	if cfg.Mode == ModeAlternate {
		afShift := 4 * uint32(p.n%8)
		afr := &p.p.AFRL
		if p.n >= 8 {
			afr = &p.p.AFRH
		}
		afr.ReplaceBits(uint32(cfg.AF)<<afShift, 0xF<<afShift, 0)
	}
}

// Set drives the pin through the set/reset register, atomic with respect
// to the port's other pins.
func (p Pin) Set(high bool) {
	if high {
		p.p.BSRR.Set(1 << p.n)
	} else {
		p.p.BSRR.Set(1 << (uint32(p.n) + 16))
	}
}

// High drives the pin high.
func (p Pin) High() { p.Set(true) }

// Low drives the pin low.
func (p Pin) Low() { p.Set(false) }

// Toggle inverts the pin's output.
func (p Pin) Toggle() {
	p.Set(p.p.ODR.Get()&(1<<p.n) == 0)
}

// Get reads the pin's input level.
func (p Pin) Get() bool {
	return p.p.IDR.Get()&(1<<p.n) != 0
}
