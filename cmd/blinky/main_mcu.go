//go:build stm32f4

// cmd/blinky/main_mcu.go
package main

import (
	"time"

	"f4hal-go/delay"
	"f4hal-go/flash"
	"f4hal-go/freq"
	"f4hal-go/gpio"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
	"f4hal-go/timer"
)

// Discovery-class board: 8MHz crystal, user LED on PA5.
func main() {
	println("[blinky] boot")

	r := rcc.Constrain(stm32.RCC)
	f := flash.Constrain(stm32.FLASH)

	acr := f.ACR()
	acr.EnablePrefetch()
	acr.EnableICache()
	acr.EnableDCache()

	clk := r.CFGR.Source(rcc.HSE(8*freq.MHz)).
		EnablePLL(168, 2, 7).
		APB1Prescale(4).
		APB2Prescale(2).
		Freeze(acr)

	println("[blinky] sysclk", clk.Sysclk().MHz(), "MHz")

	led := gpio.NewPort(stm32.GPIOA, &r.AHB1, stm32.RCC_AHB1ENR_GPIOAEN).Pin(5)
	led.Configure(gpio.Config{Mode: gpio.ModeOutput})

	// Three quick flashes to show the core is up and timed right.
	sleep := delay.New(clk)
	for i := 0; i < 6; i++ {
		led.Toggle()
		sleep.Sleep(100 * time.Millisecond)
	}

	tick := timer.NewTIM2(stm32.TIM2, &r.APB1, clk)
	if err := tick.Start(500 * time.Millisecond); err != nil {
		println("[blinky] timer:", err.Error())
		return
	}
	for {
		if tick.Expired() {
			led.Toggle()
		}
	}
}
