// mmio/mmio_host.go
//go:build !stm32f4

package mmio

// WriteRule rewrites the value a store will latch, standing in for bits
// the hardware manages on its own (ready flags tracking enable bits and
// the like). old is the current cell content, next the value being stored.
type WriteRule func(old, next uint32) uint32

// Register32 is a RAM-backed register cell carrying the method set of
// TinyGo's volatile.Register32.
type Register32 struct {
	reg  uint32
	rule WriteRule
}

// Get returns the current cell value.
func (r *Register32) Get() uint32 { return r.reg }

// Set stores v, applying the cell's write rule and journalling the store.
func (r *Register32) Set(v uint32) {
	if r.rule != nil {
		v = r.rule(r.reg, v)
	}
	r.reg = v
	record(r, v)
}

// SetBits sets the given bits, read-modify-write.
func (r *Register32) SetBits(bits uint32) { r.Set(r.reg | bits) }

// ClearBits clears the given bits, read-modify-write.
func (r *Register32) ClearBits(bits uint32) { r.Set(r.reg &^ bits) }

// HasBits reports whether any of the given bits are set.
func (r *Register32) HasBits(bits uint32) bool { return r.reg&bits != 0 }

// ReplaceBits stores value into the field selected by mask<<pos, leaving
// the rest of the cell alone. Callers pass pre-shifted values and masks
// with pos 0, matching the generated device packages.
func (r *Register32) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.reg&^(mask<<pos) | value<<pos)
}

// SetRule installs f as the cell's write rule; nil removes it. Host only.
func (r *Register32) SetRule(f WriteRule) { r.rule = f }

// Load stores v directly: no rule, no journal entry. Simulators use it to
// apply reset values and to inject inbound data.
func (r *Register32) Load(v uint32) { r.reg = v }
