//go:build !stm32f4

// delay/delay_host.go
package delay

import "time"

// Sleep waits for d on the host scheduler.
func (s *Sleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
