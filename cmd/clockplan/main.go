//go:build !stm32f4

// cmd/clockplan/main.go
// clockplan vets clock trees on the desk: it loads an HCL plan, dry-runs
// it against a simulated device and prints what the hardware would be
// told to do.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"f4hal-go/freq"
	"f4hal-go/plan"
	"f4hal-go/rcc"
)

var (
	logLevel  string
	logFormat string
	solveHSE  string

	rootCmd = &cobra.Command{
		Use:   "clockplan",
		Short: "Dry-run STM32F4 clock trees before they reach hardware",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(logLevel, logFormat, os.Stderr))
		},
		SilenceUsage: true,
	}

	checkCmd = &cobra.Command{
		Use:   "check <plan.hcl>",
		Short: "Validate every clock in a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := plan.Load(args[0])
			if err != nil {
				return err
			}
			reps, err := plan.CheckAll(f)
			for _, rep := range reps {
				slog.Info("clock ok",
					"name", rep.Name,
					"sysclk", rep.Clocks.Sysclk(),
					"hclk", rep.Clocks.HCLK(),
					"pclk1", rep.Clocks.PCLK1(),
					"pclk2", rep.Clocks.PCLK2(),
					"latency", rep.Latency)
			}
			return err
		},
	}

	solveCmd = &cobra.Command{
		Use:   "solve <target>",
		Short: "Find PLL coefficients for a target system clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := freq.Parse(args[0])
			if err != nil {
				return fmt.Errorf("target %q: %w", args[0], err)
			}
			src := rcc.HSI()
			if solveHSE != "" {
				hz, err := freq.Parse(solveHSE)
				if err != nil {
					return fmt.Errorf("hse %q: %w", solveHSE, err)
				}
				src = rcc.HSE(hz)
			}
			s, err := plan.Solve(src, target)
			if err != nil {
				return err
			}
			fmt.Printf("m=%d n=%d p=%d q=%d\n", s.M, s.N, s.P, s.Q)
			fmt.Printf("sysclk %v (vco %v, 48MHz tap %v)\n", s.Sysclk, s.VCO, s.Clk48)
			return nil
		},
	}

	reportCmd = &cobra.Command{
		Use:   "report <plan.hcl> <clock>",
		Short: "Print the register writes one clock setup commits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := plan.Load(args[0])
			if err != nil {
				return err
			}
			c, err := f.Find(args[1])
			if err != nil {
				return err
			}
			rep, err := plan.Check(c)
			if err != nil {
				return err
			}
			fmt.Printf("%s: sysclk %v, hclk %v, pclk1 %v, pclk2 %v, %d wait states\n",
				rep.Name, rep.Clocks.Sysclk(), rep.Clocks.HCLK(),
				rep.Clocks.PCLK1(), rep.Clocks.PCLK2(), rep.Latency)
			for _, w := range rep.Writes {
				fmt.Println("  " + w)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "text or json")
	solveCmd.Flags().StringVar(&solveHSE, "hse", "", "crystal frequency, e.g. 8mhz (default: internal oscillator)")
	rootCmd.AddCommand(checkCmd, solveCmd, reportCmd)
}

// newLogger builds an isolated slog.Logger for the requested level and
// format, defaulting to info-level text.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
