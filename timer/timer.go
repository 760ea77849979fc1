// timer/timer.go
// Package timer runs the general-purpose timers as periodic tick sources.
package timer

import (
	"errors"
	"math"
	"time"

	"f4hal-go/freq"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

var ErrPeriod = errors.New("period outside timer range")

// Timer is one counter with its kernel clock already worked out.
type Timer struct {
	p    *stm32.TIM_Type
	tick freq.Hertz
}

// timerClock applies the timer clock doubling rule: a timer on a bus
// whose APB prescaler is not 1 counts at twice that bus's clock.
func timerClock(pclk freq.Hertz, ppre uint8) freq.Hertz {
	if ppre == 1 {
		return pclk
	}
	return 2 * pclk
}

// NewTIM1 opens TIM1's clock gate on APB2.
func NewTIM1(block *stm32.TIM_Type, apb2 *rcc.APB2, clk rcc.Clocks) *Timer {
	apb2.Enable(stm32.RCC_APB2ENR_TIM1EN)
	return &Timer{p: block, tick: timerClock(clk.PCLK2(), clk.PPRE2())}
}

// NewTIM2 opens TIM2's clock gate on APB1.
func NewTIM2(block *stm32.TIM_Type, apb1 *rcc.APB1, clk rcc.Clocks) *Timer {
	apb1.Enable(stm32.RCC_APB1ENR_TIM2EN)
	return &Timer{p: block, tick: timerClock(clk.PCLK1(), clk.PPRE1())}
}

// NewTIM3 opens TIM3's clock gate on APB1.
func NewTIM3(block *stm32.TIM_Type, apb1 *rcc.APB1, clk rcc.Clocks) *Timer {
	apb1.Enable(stm32.RCC_APB1ENR_TIM3EN)
	return &Timer{p: block, tick: timerClock(clk.PCLK1(), clk.PPRE1())}
}

// NewTIM4 opens TIM4's clock gate on APB1.
func NewTIM4(block *stm32.TIM_Type, apb1 *rcc.APB1, clk rcc.Clocks) *Timer {
	apb1.Enable(stm32.RCC_APB1ENR_TIM4EN)
	return &Timer{p: block, tick: timerClock(clk.PCLK1(), clk.PPRE1())}
}

// NewTIM5 opens TIM5's clock gate on APB1.
func NewTIM5(block *stm32.TIM_Type, apb1 *rcc.APB1, clk rcc.Clocks) *Timer {
	apb1.Enable(stm32.RCC_APB1ENR_TIM5EN)
	return &Timer{p: block, tick: timerClock(clk.PCLK1(), clk.PPRE1())}
}

// Start runs the counter with the given update period, splitting the
// tick count across the 16 bit prescaler and reload registers.
func (t *Timer) Start(period time.Duration) error {
	if period <= 0 {
		return ErrPeriod
	}
	// Anything long enough to wrap the tick product is far beyond the
	// PSC:ARR budget, so it can be rejected before the multiply.
	if t.tick == 0 || uint64(period) > math.MaxUint64/uint64(t.tick) {
		return ErrPeriod
	}
	ticks := uint64(t.tick) * uint64(period) / uint64(time.Second)
	// A reload value of 0 stalls the counter, so two ticks is the floor.
	if ticks < 2 {
		return ErrPeriod
	}
	psc := ticks / 65536
	if psc > 0xFFFF {
		return ErrPeriod
	}
	arr := ticks/(psc+1) - 1

	t.p.PSC.Set(uint32(psc))
	t.p.ARR.Set(uint32(arr))
	// Latch the prescaler, then drop the flag the latch raises.
	t.p.EGR.Set(stm32.TIM_EGR_UG)
	t.p.SR.ClearBits(stm32.TIM_SR_UIF)
	t.p.CR1.SetBits(stm32.TIM_CR1_CEN)
	return nil
}

// Stop halts the counter without touching its configuration.
func (t *Timer) Stop() {
	t.p.CR1.ClearBits(stm32.TIM_CR1_CEN)
}

// Expired reports and clears the update flag.
func (t *Timer) Expired() bool {
	if !t.p.SR.HasBits(stm32.TIM_SR_UIF) {
		return false
	}
	t.p.SR.ClearBits(stm32.TIM_SR_UIF)
	return true
}
