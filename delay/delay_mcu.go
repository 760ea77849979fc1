//go:build stm32f4

// delay/delay_mcu.go
package delay

import (
	"math"
	"time"

	"f4hal-go/mmio"
)

// Sleep busy-waits for roughly d. The volatile store keeps the loop
// body at about four cycles on a Cortex-M4 running from flash with the
// accelerators on.
func (s *Sleeper) Sleep(d time.Duration) {
	if d <= 0 || s.hclk == 0 {
		return
	}
	// Cap the wait so the cycle product cannot wrap.
	if limit := time.Duration(math.MaxUint64 / uint64(s.hclk)); d > limit {
		d = limit
	}
	var sink mmio.Register32
	n := uint64(s.hclk) * uint64(d) / uint64(time.Second) / 4
	for i := uint64(0); i < n; i++ {
		sink.Set(uint32(i))
	}
}
