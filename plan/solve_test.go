//go:build !stm32f4

package plan

import (
	"testing"

	"f4hal-go/freq"
	"f4hal-go/rcc"
)

func TestSolveFullSpeedFromHSI(t *testing.T) {
	s, err := Solve(rcc.HSI(), 168*freq.MHz)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := Solution{
		M: 8, N: 168, P: 2, Q: 7,
		Sysclk: 168 * freq.MHz,
		VCO:    336 * freq.MHz,
		Clk48:  48 * freq.MHz,
	}
	if *s != want {
		t.Fatalf("got %+v, want %+v", *s, want)
	}
}

func TestSolveAwkwardCrystal(t *testing.T) {
	// 25MHz cannot hit 168MHz exactly: the divider chain truncates.
	s, err := Solve(rcc.HSE(25*freq.MHz), 168*freq.MHz)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if s.M != 13 || s.N != 174 || s.P != 2 || s.Q != 7 {
		t.Fatalf("coefficients %+v", s)
	}
	if s.Sysclk != 167_307_612 {
		t.Fatalf("sysclk = %d, want 167307612", s.Sysclk)
	}
	if s.Clk48 != 47_802_174 {
		t.Fatalf("clk48 = %d, want 47802174", s.Clk48)
	}
}

func TestSolveExactMidRangeTarget(t *testing.T) {
	s, err := Solve(rcc.HSI(), 100*freq.MHz)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if s.N != 100 || s.P != 2 || s.Sysclk != 100*freq.MHz {
		t.Fatalf("got %+v", s)
	}
}

func TestSolveTiePrefersSmallDivider(t *testing.T) {
	// 50MHz is reachable as 100MHz/2 and 200MHz/4; the lower VCO wins.
	s, err := Solve(rcc.HSI(), 50*freq.MHz)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if s.N != 50 || s.P != 2 {
		t.Fatalf("got N=%d P=%d, want N=50 P=2", s.N, s.P)
	}
}

func TestSolveLowTargetNeedsBigDivider(t *testing.T) {
	s, err := Solve(rcc.HSI(), 13*freq.MHz)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if s.N != 52 || s.P != 8 || s.Sysclk != 13*freq.MHz {
		t.Fatalf("got %+v", s)
	}
	if s.Q != 2 || s.Clk48 != 52*freq.MHz {
		t.Fatalf("q tap %+v", s)
	}
}

func TestSolveCapsAtDeviceCeiling(t *testing.T) {
	s, err := Solve(rcc.HSI(), 300*freq.MHz)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if s.Sysclk != 168*freq.MHz {
		t.Fatalf("sysclk = %v, want the 168MHz ceiling", s.Sysclk)
	}
}

func TestSolveNoSolution(t *testing.T) {
	cases := []struct {
		name   string
		src    rcc.ClockSource
		target freq.Hertz
	}{
		{"below_reach", rcc.HSI(), 10 * freq.MHz},
		{"crystal_too_fast", rcc.HSE(200 * freq.MHz), 168 * freq.MHz},
		{"crystal_too_slow", rcc.HSE(2 * freq.MHz), 168 * freq.MHz},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Solve(tc.src, tc.target); err != ErrNoSolution {
				t.Fatalf("err = %v, want ErrNoSolution", err)
			}
		})
	}
}
