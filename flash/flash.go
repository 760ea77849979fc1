// flash/flash.go
// Package flash owns the flash interface block. The clock engine borrows
// its access-control handle during commit to program wait states ahead of
// a frequency raise.
package flash

import "f4hal-go/stm32"

var constrained = map[*stm32.FLASH_Type]bool{}

// Flash is the ownership handle for one flash interface block.
type Flash struct {
	p *stm32.FLASH_Type
}

// Constrain takes ownership of the given block. At most one handle per
// block can ever exist; a second call panics. Boot-time code is single
// threaded, so no lock guards the registry.
func Constrain(p *stm32.FLASH_Type) *Flash {
	if p == nil {
		panic("flash: nil register block")
	}
	if constrained[p] {
		panic("flash: already constrained")
	}
	constrained[p] = true
	return &Flash{p: p}
}

// ACR returns the access-control handle scoped to this block.
func (f *Flash) ACR() *ACR { return &ACR{p: f.p} }

// ACR drives flash wait states and the access accelerators.
type ACR struct {
	p *stm32.FLASH_Type
}

// SetLatency programs the wait-state field, leaving the accelerator bits
// alone.
func (a *ACR) SetLatency(ws uint8) {
	a.p.ACR.ReplaceBits(uint32(ws)<<stm32.FLASH_ACR_LATENCY_Pos, stm32.FLASH_ACR_LATENCY_Msk, 0)
}

// Latency returns the programmed wait-state count.
func (a *ACR) Latency() uint8 {
	return uint8(a.p.ACR.Get() & stm32.FLASH_ACR_LATENCY_Msk >> stm32.FLASH_ACR_LATENCY_Pos)
}

// EnablePrefetch turns on the prefetch queue.
func (a *ACR) EnablePrefetch() { a.p.ACR.SetBits(stm32.FLASH_ACR_PRFTEN) }

// EnableICache turns on the instruction cache.
func (a *ACR) EnableICache() { a.p.ACR.SetBits(stm32.FLASH_ACR_ICEN) }

// EnableDCache turns on the data cache.
func (a *ACR) EnableDCache() { a.p.ACR.SetBits(stm32.FLASH_ACR_DCEN) }
