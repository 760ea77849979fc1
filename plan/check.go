//go:build !stm32f4

// plan/check.go
package plan

import (
	"strings"

	"f4hal-go/flash"
	"f4hal-go/freq"
	"f4hal-go/mmio"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

// ConfigError reports a clock setup the hardware would refuse.
type ConfigError struct {
	Clock  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "clock " + e.Clock + ": " + e.Reason
}

// Report is the outcome of a clean dry run.
type Report struct {
	Name    string
	Clocks  rcc.Clocks
	Latency uint8
	Writes  []string
}

// Check dry-runs one clock setup against a fresh simulated device and
// reports the resulting tree, flash latency and register traffic. A
// setup the clock engine rejects comes back as a *ConfigError.
func Check(c *Clock) (rep *Report, err error) {
	s := stm32.NewSim()
	r := rcc.Constrain(&s.RCC)
	f := flash.Constrain(&s.FLASH)

	defer func() {
		if p := recover(); p != nil {
			msg, ok := p.(string)
			if !ok {
				panic(p)
			}
			err = &ConfigError{Clock: c.Name, Reason: strings.TrimPrefix(msg, "rcc: ")}
		}
	}()

	cfg := &r.CFGR
	if c.Source == "hse" {
		cfg = cfg.Source(rcc.HSE(freq.Hertz(*c.HSE)))
	}
	if c.PLL != nil {
		cfg = cfg.EnablePLL(c.PLL.N, c.PLL.P, c.PLL.Q)
	}
	if c.Bus != nil {
		if c.Bus.AHB != nil {
			cfg = cfg.AHBPrescale(*c.Bus.AHB)
		}
		if c.Bus.APB1 != nil {
			cfg = cfg.APB1Prescale(*c.Bus.APB1)
		}
		if c.Bus.APB2 != nil {
			cfg = cfg.APB2Prescale(*c.Bus.APB2)
		}
	}

	mmio.ResetTrace()
	clk := cfg.Freeze(f.ACR())

	writes := mmio.Trace()
	lines := make([]string, len(writes))
	for i, w := range writes {
		lines[i] = s.FormatWrite(w)
	}
	return &Report{
		Name:    c.Name,
		Clocks:  clk,
		Latency: f.ACR().Latency(),
		Writes:  lines,
	}, nil
}

// CheckAll dry-runs every clock in a plan, stopping at the first bad one.
func CheckAll(f *File) ([]*Report, error) {
	reps := make([]*Report, 0, len(f.Clocks))
	for i := range f.Clocks {
		rep, err := Check(&f.Clocks[i])
		if err != nil {
			return reps, err
		}
		reps = append(reps, rep)
	}
	return reps, nil
}
