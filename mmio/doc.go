// Package mmio models 32-bit memory-mapped registers.
//
// On stm32f4 builds Register32 is TinyGo's volatile register type and
// every access is a real bus access. On host builds it is a RAM cell with
// the same method set, plus a write journal for ordering assertions and
// per-cell write rules that stand in for hardware-managed bits.
package mmio
