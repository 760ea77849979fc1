//go:build !stm32f4

// plan/plan.go
// Package plan loads clock plans from HCL and dry-runs them against a
// simulated device, so a bad tree is caught on the desk and not on the
// board.
package plan

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// File is the root of a plan document.
type File struct {
	Clocks []Clock `hcl:"clock,block"`
}

// Clock is one named clock setup.
type Clock struct {
	Name   string  `hcl:"name,label"`
	Source string  `hcl:"source"` // "hsi" or "hse"
	HSE    *uint32 `hcl:"hse,optional"`
	PLL    *PLL    `hcl:"pll,block"`
	Bus    *Bus    `hcl:"bus,block"`
}

// PLL carries the multiplier chain. The input divider is derived from
// the source, never configured.
type PLL struct {
	N uint32 `hcl:"n"`
	P uint32 `hcl:"p"`
	Q uint32 `hcl:"q"`
}

// Bus carries the prescalers. An unset prescaler stays at 1.
type Bus struct {
	AHB  *uint32 `hcl:"ahb,optional"`
	APB1 *uint32 `hcl:"apb1,optional"`
	APB2 *uint32 `hcl:"apb2,optional"`
}

// evalContext exposes hz, khz and mhz so plans can spell frequencies
// the way datasheets do.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"hz":  cty.NumberIntVal(1),
			"khz": cty.NumberIntVal(1_000),
			"mhz": cty.NumberIntVal(1_000_000),
		},
	}
}

// Load reads and decodes a plan file.
func Load(path string) (*File, error) {
	p := hclparse.NewParser()
	f, diags := p.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(f)
}

// Parse decodes a plan held in memory. filename only labels diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	p := hclparse.NewParser()
	f, diags := p.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return decode(f)
}

func decode(f *hcl.File) (*File, error) {
	var out File
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &out); diags.HasErrors() {
		return nil, diags
	}
	for i := range out.Clocks {
		if err := out.Clocks[i].validate(); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (c *Clock) validate() error {
	switch c.Source {
	case "hsi":
		if c.HSE != nil {
			return fmt.Errorf("clock %q: hse frequency set but source is hsi", c.Name)
		}
	case "hse":
		if c.HSE == nil {
			return fmt.Errorf("clock %q: source hse needs an hse frequency", c.Name)
		}
	default:
		return fmt.Errorf("clock %q: unknown source %q", c.Name, c.Source)
	}
	return nil
}

// Find returns the named clock setup.
func (f *File) Find(name string) (*Clock, error) {
	for i := range f.Clocks {
		if f.Clocks[i].Name == name {
			return &f.Clocks[i], nil
		}
	}
	return nil, fmt.Errorf("no clock %q in plan", name)
}
