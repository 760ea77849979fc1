//go:build !stm32f4

// cmd/blinky/main_host.go
package main

import (
	"fmt"

	"f4hal-go/flash"
	"f4hal-go/freq"
	"f4hal-go/mmio"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

// Host build: dry-run the board's bring-up against the simulator and
// show the register traffic the hardware would see.
func main() {
	s := stm32.NewSim()
	r := rcc.Constrain(&s.RCC)
	f := flash.Constrain(&s.FLASH)

	acr := f.ACR()
	acr.EnablePrefetch()
	acr.EnableICache()
	acr.EnableDCache()

	mmio.ResetTrace()
	clk := r.CFGR.Source(rcc.HSE(8*freq.MHz)).
		EnablePLL(168, 2, 7).
		APB1Prescale(4).
		APB2Prescale(2).
		Freeze(acr)

	fmt.Printf("sysclk %v, hclk %v, pclk1 %v, pclk2 %v, %d wait states\n",
		clk.Sysclk(), clk.HCLK(), clk.PCLK1(), clk.PCLK2(), acr.Latency())
	for _, w := range mmio.Trace() {
		fmt.Println(s.FormatWrite(w))
	}
}
