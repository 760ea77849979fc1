//go:build stm32f4

package mmio

import "runtime/volatile"

// Register32 is a live hardware register on MCU builds.
type Register32 = volatile.Register32
