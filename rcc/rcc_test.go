package rcc

import (
	"testing"

	"f4hal-go/mmio"
	"f4hal-go/stm32"
)

func TestConstrainOnce(t *testing.T) {
	sim := stm32.NewSim()
	Constrain(&sim.RCC)
	defer func() {
		if recover() == nil {
			t.Fatalf("second Constrain did not panic")
		}
	}()
	Constrain(&sim.RCC)
}

func TestBusGates(t *testing.T) {
	sim := stm32.NewSim()
	r := Constrain(&sim.RCC)

	r.AHB1.Enable(stm32.RCC_AHB1ENR_GPIOAEN | stm32.RCC_AHB1ENR_GPIOCEN)
	if got := sim.RCC.AHB1ENR.Get(); got != stm32.RCC_AHB1ENR_GPIOAEN|stm32.RCC_AHB1ENR_GPIOCEN {
		t.Fatalf("AHB1ENR = %#x", got)
	}
	r.APB1.Enable(stm32.RCC_APB1ENR_USART2EN)
	if !sim.RCC.APB1ENR.HasBits(stm32.RCC_APB1ENR_USART2EN) {
		t.Fatalf("APB1ENR = %#x", sim.RCC.APB1ENR.Get())
	}
	r.APB2.Enable(stm32.RCC_APB2ENR_SPI1EN)
	if !sim.RCC.APB2ENR.HasBits(stm32.RCC_APB2ENR_SPI1EN) {
		t.Fatalf("APB2ENR = %#x", sim.RCC.APB2ENR.Get())
	}
	// Gate writes are additive, not clobbering.
	r.APB1.Enable(stm32.RCC_APB1ENR_TIM2EN)
	if !sim.RCC.APB1ENR.HasBits(stm32.RCC_APB1ENR_USART2EN) {
		t.Fatalf("earlier gate lost: %#x", sim.RCC.APB1ENR.Get())
	}

	r.AHB1.LPENR().SetBits(stm32.RCC_AHB1ENR_GPIOAEN)
	if !sim.RCC.AHB1LPENR.HasBits(stm32.RCC_AHB1ENR_GPIOAEN) {
		t.Fatalf("AHB1LPENR = %#x", sim.RCC.AHB1LPENR.Get())
	}
}

func TestResetPulses(t *testing.T) {
	sim := stm32.NewSim()
	r := Constrain(&sim.RCC)

	mmio.ResetTrace()
	r.APB2.Reset(stm32.RCC_APB2ENR_SPI1EN)
	tr := mmio.Trace()
	if len(tr) != 2 {
		t.Fatalf("reset pulse wrote %d times", len(tr))
	}
	if tr[0].Value != stm32.RCC_APB2ENR_SPI1EN || tr[1].Value != 0 {
		t.Fatalf("pulse values %#x, %#x", tr[0].Value, tr[1].Value)
	}
	if sim.RCC.APB2RSTR.Get() != 0 {
		t.Fatalf("APB2RSTR left asserted")
	}
}
