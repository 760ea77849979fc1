// rcc/rcc.go
// Package rcc owns the reset and clock control block: the bus gate
// tokens, the one-shot clock configuration builder, and the frozen
// clock record every peripheral driver derives its timing from.
package rcc

import (
	"f4hal-go/mmio"
	"f4hal-go/stm32"
)

var constrained = map[*stm32.RCC_Type]bool{}

// Rcc is the split ownership of one clock-control block. Hand the bus
// tokens to the peripheral drivers that sit on each bus; run CFGR once to
// commit the clock tree. Do not copy.
type Rcc struct {
	AHB1 AHB1
	AHB2 AHB2
	AHB3 AHB3
	APB1 APB1
	APB2 APB2
	CFGR CFGR
}

// Constrain takes ownership of the given clock-control block and splits
// it into bus tokens and the configuration builder. At most one split per
// block can ever exist; a second call panics. Boot-time code is single
// threaded, so no lock guards the registry.
func Constrain(p *stm32.RCC_Type) *Rcc {
	if p == nil {
		panic("rcc: nil register block")
	}
	if constrained[p] {
		panic("rcc: already constrained")
	}
	constrained[p] = true
	return &Rcc{
		AHB1: AHB1{p: p},
		AHB2: AHB2{p: p},
		AHB3: AHB3{p: p},
		APB1: APB1{p: p},
		APB2: APB2{p: p},
		CFGR: CFGR{p: p, source: HSI(), ahb: 1, apb1: 1, apb2: 1},
	}
}

// AHB1 grants access to the AHB1 peripheral gate registers.
type AHB1 struct {
	p *stm32.RCC_Type
}

// ENR returns the clock enable register.
func (b *AHB1) ENR() *mmio.Register32 { return &b.p.AHB1ENR }

// LPENR returns the low-power clock enable register.
func (b *AHB1) LPENR() *mmio.Register32 { return &b.p.AHB1LPENR }

// RSTR returns the peripheral reset register.
func (b *AHB1) RSTR() *mmio.Register32 { return &b.p.AHB1RSTR }

// Enable opens the clock gates in mask, leaving the others alone.
func (b *AHB1) Enable(mask uint32) { b.ENR().SetBits(mask) }

// Reset pulses the reset lines in mask.
func (b *AHB1) Reset(mask uint32) {
	b.RSTR().SetBits(mask)
	b.RSTR().ClearBits(mask)
}

// AHB2 grants access to the AHB2 peripheral gate registers.
type AHB2 struct {
	p *stm32.RCC_Type
}

func (b *AHB2) ENR() *mmio.Register32   { return &b.p.AHB2ENR }
func (b *AHB2) LPENR() *mmio.Register32 { return &b.p.AHB2LPENR }
func (b *AHB2) RSTR() *mmio.Register32  { return &b.p.AHB2RSTR }
func (b *AHB2) Enable(mask uint32)      { b.ENR().SetBits(mask) }
func (b *AHB2) Reset(mask uint32) {
	b.RSTR().SetBits(mask)
	b.RSTR().ClearBits(mask)
}

// AHB3 grants access to the AHB3 peripheral gate registers.
type AHB3 struct {
	p *stm32.RCC_Type
}

func (b *AHB3) ENR() *mmio.Register32   { return &b.p.AHB3ENR }
func (b *AHB3) LPENR() *mmio.Register32 { return &b.p.AHB3LPENR }
func (b *AHB3) RSTR() *mmio.Register32  { return &b.p.AHB3RSTR }
func (b *AHB3) Enable(mask uint32)      { b.ENR().SetBits(mask) }
func (b *AHB3) Reset(mask uint32) {
	b.RSTR().SetBits(mask)
	b.RSTR().ClearBits(mask)
}

// APB1 grants access to the low-speed peripheral bus gate registers.
type APB1 struct {
	p *stm32.RCC_Type
}

func (b *APB1) ENR() *mmio.Register32   { return &b.p.APB1ENR }
func (b *APB1) LPENR() *mmio.Register32 { return &b.p.APB1LPENR }
func (b *APB1) RSTR() *mmio.Register32  { return &b.p.APB1RSTR }
func (b *APB1) Enable(mask uint32)      { b.ENR().SetBits(mask) }
func (b *APB1) Reset(mask uint32) {
	b.RSTR().SetBits(mask)
	b.RSTR().ClearBits(mask)
}

// APB2 grants access to the high-speed peripheral bus gate registers.
type APB2 struct {
	p *stm32.RCC_Type
}

func (b *APB2) ENR() *mmio.Register32   { return &b.p.APB2ENR }
func (b *APB2) LPENR() *mmio.Register32 { return &b.p.APB2LPENR }
func (b *APB2) RSTR() *mmio.Register32  { return &b.p.APB2RSTR }
func (b *APB2) Enable(mask uint32)      { b.ENR().SetBits(mask) }
func (b *APB2) Reset(mask uint32) {
	b.RSTR().SetBits(mask)
	b.RSTR().ClearBits(mask)
}
