package stm32

import (
	"testing"

	"f4hal-go/mmio"
)

func TestSimResetValues(t *testing.T) {
	s := NewSim()
	if got := s.RCC.CR.Get(); got != 0x83 {
		t.Fatalf("RCC.CR reset = %#x", got)
	}
	if got := s.RCC.PLLCFGR.Get(); got != 0x24003010 {
		t.Fatalf("RCC.PLLCFGR reset = %#x", got)
	}
	if got := s.RCC.CFGR.Get(); got != 0 {
		t.Fatalf("RCC.CFGR reset = %#x", got)
	}
	if !s.USART2.SR.HasBits(USART_SR_TXE) {
		t.Fatalf("USART2.SR reset = %#x", s.USART2.SR.Get())
	}
	if !s.SPI1.SR.HasBits(SPI_SR_TXE) {
		t.Fatalf("SPI1.SR reset = %#x", s.SPI1.SR.Get())
	}
}

func TestReadyFlagsTrackEnables(t *testing.T) {
	s := NewSim()
	s.RCC.CR.SetBits(RCC_CR_HSEON)
	if !s.RCC.CR.HasBits(RCC_CR_HSERDY) {
		t.Fatalf("HSERDY not following HSEON: %#x", s.RCC.CR.Get())
	}
	s.RCC.CR.SetBits(RCC_CR_PLLON)
	if !s.RCC.CR.HasBits(RCC_CR_PLLRDY) {
		t.Fatalf("PLLRDY not following PLLON: %#x", s.RCC.CR.Get())
	}
	s.RCC.CR.ClearBits(RCC_CR_PLLON)
	if s.RCC.CR.HasBits(RCC_CR_PLLRDY) {
		t.Fatalf("PLLRDY stuck: %#x", s.RCC.CR.Get())
	}
}

func TestStatusFollowsSwitch(t *testing.T) {
	s := NewSim()
	s.RCC.CFGR.ReplaceBits(RCC_CFGR_SW_PLL<<RCC_CFGR_SW_Pos, RCC_CFGR_SW_Msk, 0)
	want := uint32(RCC_CFGR_SW_PLL << RCC_CFGR_SWS_Pos)
	if got := s.RCC.CFGR.Get() & RCC_CFGR_SWS_Msk; got != want {
		t.Fatalf("SWS = %#x, want %#x", got, want)
	}
}

func TestBSRRDrivesODR(t *testing.T) {
	s := NewSim()
	s.GPIOA.BSRR.Set(1 << 5)
	if s.GPIOA.ODR.Get()&(1<<5) == 0 {
		t.Fatalf("ODR bit not set: %#x", s.GPIOA.ODR.Get())
	}
	s.GPIOA.BSRR.Set(1 << (5 + 16))
	if s.GPIOA.ODR.Get()&(1<<5) != 0 {
		t.Fatalf("ODR bit not cleared: %#x", s.GPIOA.ODR.Get())
	}
	if s.GPIOA.BSRR.Get() != 0 {
		t.Fatalf("BSRR should read zero")
	}
}

func TestUpdateGeneration(t *testing.T) {
	s := NewSim()
	s.TIM2.CNT.Load(1234)
	s.TIM2.EGR.Set(TIM_EGR_UG)
	if !s.TIM2.SR.HasBits(TIM_SR_UIF) {
		t.Fatalf("UIF not set by UG")
	}
	if s.TIM2.CNT.Get() != 0 {
		t.Fatalf("CNT not reloaded: %d", s.TIM2.CNT.Get())
	}
}

func TestResolveAndFormat(t *testing.T) {
	s := NewSim()
	mmio.ResetTrace()
	s.RCC.CFGR.Set(0x1402)
	s.FLASH.ACR.Set(0x5)
	tr := mmio.Trace()
	if len(tr) != 2 {
		t.Fatalf("trace length %d", len(tr))
	}
	names := s.TraceNames(tr)
	if names[0] != "RCC.CFGR" || names[1] != "FLASH.ACR" {
		t.Fatalf("names = %v", names)
	}
	if got := s.FormatWrite(tr[1]); got != "FLASH.ACR = 0x00000005" {
		t.Fatalf("FormatWrite = %q", got)
	}
	// A foreign sim's registers resolve as raw addresses, not names.
	other := NewSim()
	if got := other.Resolve(tr[0].Addr); got == "RCC.CFGR" {
		t.Fatalf("foreign address resolved to %q", got)
	}
	if got := s.Resolve(tr[0].Addr); got != "RCC.CFGR" {
		t.Fatalf("Resolve = %q", got)
	}
}
