package serial

import (
	"testing"

	"f4hal-go/flash"
	"f4hal-go/freq"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

// rig freezes the usual full-speed tree: pclk1 42MHz, pclk2 84MHz.
func rig(t *testing.T) (*stm32.Sim, *rcc.Rcc, rcc.Clocks) {
	t.Helper()
	s := stm32.NewSim()
	r := rcc.Constrain(&s.RCC)
	f := flash.Constrain(&s.FLASH)
	clk := r.CFGR.Source(rcc.HSE(8*freq.MHz)).
		EnablePLL(168, 2, 7).
		APB1Prescale(4).
		APB2Prescale(2).
		Freeze(f.ACR())
	return s, r, clk
}

func TestGatesOpenPerBus(t *testing.T) {
	s, r, clk := rig(t)
	NewUSART1(&s.USART1, &r.APB2, clk)
	NewUSART2(&s.USART2, &r.APB1, clk)
	NewUSART6(&s.USART6, &r.APB2, clk)
	if !s.RCC.APB2ENR.HasBits(stm32.RCC_APB2ENR_USART1EN) || !s.RCC.APB2ENR.HasBits(stm32.RCC_APB2ENR_USART6EN) {
		t.Fatalf("APB2ENR = %#x", s.RCC.APB2ENR.Get())
	}
	if !s.RCC.APB1ENR.HasBits(stm32.RCC_APB1ENR_USART2EN) {
		t.Fatalf("APB1ENR = %#x", s.RCC.APB1ENR.Get())
	}
}

func TestBaudDivisorPerBus(t *testing.T) {
	s, r, clk := rig(t)

	u2 := NewUSART2(&s.USART2, &r.APB1, clk)
	if err := u2.Configure(DefaultConfig()); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	// 42MHz / 115200 truncates to 364.
	if got := s.USART2.BRR.Get(); got != 364 {
		t.Fatalf("USART2 BRR = %d, want 364", got)
	}

	u1 := NewUSART1(&s.USART1, &r.APB2, clk)
	if err := u1.Configure(Config{BaudRate: 115200}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	// 84MHz / 115200 truncates to 729.
	if got := s.USART1.BRR.Get(); got != 729 {
		t.Fatalf("USART1 BRR = %d, want 729", got)
	}

	wantCR1 := uint32(stm32.USART_CR1_UE | stm32.USART_CR1_TE | stm32.USART_CR1_RE)
	if got := s.USART2.CR1.Get(); got != wantCR1 {
		t.Fatalf("CR1 = %#x, want %#x", got, wantCR1)
	}
}

func TestConfigureRejectsBadRates(t *testing.T) {
	s, r, clk := rig(t)
	u := NewUSART2(&s.USART2, &r.APB1, clk)
	if err := u.Configure(Config{BaudRate: 0}); err != ErrBaudRate {
		t.Fatalf("baud 0: err = %v, want ErrBaudRate", err)
	}
	// 42MHz / 3MHz = 14, below the 16x oversampling floor.
	if err := u.Configure(Config{BaudRate: 3_000_000}); err != ErrBaudRate {
		t.Fatalf("baud 3M: err = %v, want ErrBaudRate", err)
	}
}

func TestWriteAndRead(t *testing.T) {
	s, r, clk := rig(t)
	u := NewUSART2(&s.USART2, &r.APB1, clk)
	if err := u.Configure(DefaultConfig()); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if err := u.WriteByte('A'); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if got := s.USART2.DR.Get(); got != 'A' {
		t.Fatalf("DR = %#x, want 'A'", got)
	}

	n, err := u.Write([]byte("ok"))
	if n != 2 || err != nil {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if got := s.USART2.DR.Get(); got != 'k' {
		t.Fatalf("DR = %#x, want 'k'", got)
	}

	s.USART2.DR.Load('z')
	s.USART2.SR.Load(s.USART2.SR.Get() | stm32.USART_SR_RXNE)
	b, err := u.ReadByte()
	if err != nil || b != 'z' {
		t.Fatalf("ReadByte = %q, %v", b, err)
	}
}
