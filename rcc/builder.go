// rcc/builder.go
package rcc

import (
	"f4hal-go/flash"
	"f4hal-go/freq"
	"f4hal-go/stm32"
)

// Bus frequency ceilings and the PLL comparator window, per the F40x
// datasheet.
const (
	MaxHCLK  = 168_000_000
	MaxPCLK1 = 42_000_000
	MaxPCLK2 = 84_000_000
	MinVCO   = 100_000_000
	MaxVCO   = 432_000_000
)

type pllCoefficients struct {
	m, n, p, q uint32
}

// CFGR accumulates a clock tree configuration and commits it with Freeze.
// Configuration calls chain; after Freeze the builder is sealed and any
// further call panics. Start over from a fresh Constrain to reconfigure.
type CFGR struct {
	p      *stm32.RCC_Type
	source ClockSource
	pll    pllCoefficients
	hasPLL bool
	// Prescaler divisors, seeded to 1 by Constrain. Stored verbatim:
	// membership in the hardware tables is checked at Freeze, and 0 is
	// rejected there like any other unsupported divisor.
	ahb    uint32
	apb1   uint32
	apb2   uint32
	sealed bool
}

func (c *CFGR) mustBeOpen(op string) {
	if c.sealed {
		panic("rcc: " + op + " after Freeze")
	}
}

// Source replaces the clock source. Set it before EnablePLL: the PLL
// input divider is fixed from whichever source is current at that point.
func (c *CFGR) Source(src ClockSource) *CFGR {
	c.mustBeOpen("Source")
	c.source = src
	return c
}

// EnablePLL routes the source through the PLL with multiplier n, main
// output divider p and secondary output divider q. The input divider m
// comes from the current source (see ClockSource.PLLM) and does not
// follow a later Source call. Coefficients are checked at Freeze.
func (c *CFGR) EnablePLL(n, p, q uint32) *CFGR {
	c.mustBeOpen("EnablePLL")
	c.pll = pllCoefficients{m: c.source.PLLM(), n: n, p: p, q: q}
	c.hasPLL = true
	return c
}

// AHBPrescale divides sysclk down to the core/memory bus clock. Valid
// divisors are checked at Freeze.
func (c *CFGR) AHBPrescale(div uint32) *CFGR {
	c.mustBeOpen("AHBPrescale")
	c.ahb = div
	return c
}

// APB1Prescale divides sysclk down to the low-speed peripheral bus clock.
func (c *CFGR) APB1Prescale(div uint32) *CFGR {
	c.mustBeOpen("APB1Prescale")
	c.apb1 = div
	return c
}

// APB2Prescale divides sysclk down to the high-speed peripheral bus clock.
func (c *CFGR) APB2Prescale(div uint32) *CFGR {
	c.mustBeOpen("APB2Prescale")
	c.apb2 = div
	return c
}

// Freeze validates the whole configuration, programs the clock tree and
// returns the frozen record. Every bound violation panics before the
// first register write; a committed tree is never partial. Wait states go
// in ahead of the source switch, the hardware contract the write order
// exists for.
func (c *CFGR) Freeze(acr *flash.ACR) Clocks {
	c.mustBeOpen("Freeze")
	c.sealed = true

	srcHz := uint64(c.source.Frequency())

	sysclk := srcHz
	var pbits uint32
	if c.hasPLL {
		pbits = validatePLL(c.pll)
		vco := srcHz / uint64(c.pll.m) * uint64(c.pll.n)
		if vco < MinVCO || vco > MaxVCO {
			panic("rcc: PLL VCO outside 100MHz..432MHz")
		}
		sysclk = vco / uint64(c.pll.p)
	}

	hpre := hpreBits(c.ahb)
	hclk := sysclk / uint64(c.ahb)
	if hclk > MaxHCLK {
		panic("rcc: HCLK above 168MHz")
	}

	ppre1 := ppreBits(c.apb1)
	pclk1 := sysclk / uint64(c.apb1)
	if pclk1 > MaxPCLK1 {
		panic("rcc: PCLK1 above 42MHz")
	}

	ppre2 := ppreBits(c.apb2)
	pclk2 := sysclk / uint64(c.apb2)
	if pclk2 > MaxPCLK2 {
		panic("rcc: PCLK2 above 84MHz")
	}

	if c.source.External() {
		c.p.CR.SetBits(stm32.RCC_CR_HSEON)
		for !c.p.CR.HasBits(stm32.RCC_CR_HSERDY) {
		}
	}

	c.p.CFGR.ReplaceBits(hpre<<stm32.RCC_CFGR_HPRE_Pos, stm32.RCC_CFGR_HPRE_Msk, 0)
	c.p.CFGR.ReplaceBits(ppre1<<stm32.RCC_CFGR_PPRE1_Pos, stm32.RCC_CFGR_PPRE1_Msk, 0)
	c.p.CFGR.ReplaceBits(ppre2<<stm32.RCC_CFGR_PPRE2_Pos, stm32.RCC_CFGR_PPRE2_Msk, 0)

	acr.SetLatency(latencyCode(hclk))

	sw := uint32(stm32.RCC_CFGR_SW_HSI)
	switch {
	case c.hasPLL:
		sw = stm32.RCC_CFGR_SW_PLL
	case c.source.External():
		sw = stm32.RCC_CFGR_SW_HSE
	}

	if c.hasPLL {
		var pllsrc uint32
		if c.source.External() {
			pllsrc = 1
		}
		c.p.PLLCFGR.ReplaceBits(pllsrc<<stm32.RCC_PLLCFGR_PLLSRC_Pos, stm32.RCC_PLLCFGR_PLLSRC_Msk, 0)
		c.p.PLLCFGR.ReplaceBits(c.pll.m<<stm32.RCC_PLLCFGR_PLLM_Pos, stm32.RCC_PLLCFGR_PLLM_Msk, 0)
		c.p.PLLCFGR.ReplaceBits(c.pll.n<<stm32.RCC_PLLCFGR_PLLN_Pos, stm32.RCC_PLLCFGR_PLLN_Msk, 0)
		c.p.PLLCFGR.ReplaceBits(pbits<<stm32.RCC_PLLCFGR_PLLP_Pos, stm32.RCC_PLLCFGR_PLLP_Msk, 0)
		c.p.PLLCFGR.ReplaceBits(c.pll.q<<stm32.RCC_PLLCFGR_PLLQ_Pos, stm32.RCC_PLLCFGR_PLLQ_Msk, 0)
		c.p.CR.SetBits(stm32.RCC_CR_PLLON)
		for !c.p.CR.HasBits(stm32.RCC_CR_PLLRDY) {
		}
	}

	c.p.CFGR.ReplaceBits(sw<<stm32.RCC_CFGR_SW_Pos, stm32.RCC_CFGR_SW_Msk, 0)
	for c.p.CFGR.Get()&stm32.RCC_CFGR_SWS_Msk != sw<<stm32.RCC_CFGR_SWS_Pos {
	}

	return Clocks{
		sysclk: freq.Hertz(sysclk),
		hclk:   freq.Hertz(hclk),
		pclk1:  freq.Hertz(pclk1),
		pclk2:  freq.Hertz(pclk2),
		ppre1:  uint8(c.apb1),
		ppre2:  uint8(c.apb2),
	}
}

// validatePLL checks the coefficient ranges and returns the 2-bit code
// for the main output divider.
func validatePLL(c pllCoefficients) uint32 {
	if c.m < 2 || c.m > 63 {
		panic("rcc: PLL input divider outside 2..63")
	}
	if c.n < 50 || c.n > 432 {
		panic("rcc: PLL multiplier outside 50..432")
	}
	if c.q < 2 || c.q > 15 {
		panic("rcc: PLL Q divider outside 2..15")
	}
	return pllPBits(c.p)
}

func pllPBits(div uint32) uint32 {
	switch div {
	case 2:
		return 0b00
	case 4:
		return 0b01
	case 6:
		return 0b10
	case 8:
		return 0b11
	}
	panic("rcc: PLL P divider not one of 2,4,6,8")
}

func hpreBits(div uint32) uint32 {
	switch div {
	case 1:
		return 0b0000
	case 2:
		return 0b1000
	case 4:
		return 0b1001
	case 8:
		return 0b1010
	case 16:
		return 0b1011
	case 64:
		return 0b1100
	case 128:
		return 0b1101
	case 256:
		return 0b1110
	case 512:
		return 0b1111
	}
	panic("rcc: AHB prescaler not one of 1,2,4,8,16,64,128,256,512")
}

func ppreBits(div uint32) uint32 {
	switch div {
	case 1:
		return 0b000
	case 2:
		return 0b100
	case 4:
		return 0b101
	case 8:
		return 0b110
	case 16:
		return 0b111
	}
	panic("rcc: APB prescaler not one of 1,2,4,8,16")
}

// latencyCode maps the core/memory bus frequency to the flash wait-state
// setting, inclusive upper bounds.
func latencyCode(hclk uint64) uint8 {
	switch {
	case hclk <= 30_000_000:
		return 0b000
	case hclk <= 60_000_000:
		return 0b001
	case hclk <= 90_000_000:
		return 0b010
	case hclk <= 120_000_000:
		return 0b011
	case hclk <= 150_000_000:
		return 0b100
	default:
		return 0b101
	}
}
