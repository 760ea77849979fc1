//go:build !stm32f4

// plan/solve.go
package plan

import (
	"errors"

	"f4hal-go/freq"
	"f4hal-go/rcc"
	"f4hal-go/x/mathx"
)

// ErrNoSolution means no coefficient set reaches the target within the
// hardware limits.
var ErrNoSolution = errors.New("no PLL solution for target")

// Solution is one workable PLL coefficient set.
type Solution struct {
	M, N, P, Q uint32
	Sysclk     freq.Hertz // achieved system clock
	VCO        freq.Hertz
	Clk48      freq.Hertz // what the Q tap actually produces
}

// Solve searches the PLL coefficient space for the fastest system clock
// not above target, with the input divider fixed by src the same way
// EnablePLL fixes it. Ties prefer the smaller output divider. Q lands
// the 48MHz tap as close to 48MHz as the tree allows.
func Solve(src rcc.ClockSource, target freq.Hertz) (*Solution, error) {
	m := uint64(src.PLLM())
	if m < 2 || m > 63 {
		return nil, ErrNoSolution
	}
	comparator := uint64(src.Frequency()) / m

	limit := uint64(target)
	if limit > rcc.MaxHCLK {
		limit = rcc.MaxHCLK
	}

	var best *Solution
	for _, p := range [...]uint64{2, 4, 6, 8} {
		for n := uint64(50); n <= 432; n++ {
			vco := comparator * n
			if !mathx.Between(vco, rcc.MinVCO, rcc.MaxVCO) {
				continue
			}
			sys := vco / p
			if sys > limit {
				break
			}
			if best != nil && sys <= uint64(best.Sysclk) {
				continue
			}
			q := mathx.Clamp(mathx.RoundDiv(vco, 48_000_000), 2, 15)
			best = &Solution{
				M:      uint32(m),
				N:      uint32(n),
				P:      uint32(p),
				Q:      uint32(q),
				Sysclk: freq.Hertz(sys),
				VCO:    freq.Hertz(vco),
				Clk48:  freq.Hertz(vco / q),
			}
		}
	}
	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}
