// freq/freq.go
// Package freq provides the unit type for clock frequencies.
package freq

import (
	"errors"

	"f4hal-go/x/conv"
)

// Hertz counts cycles per second. 32 bits cover every clock this part
// family can produce, and the type stays cheap on the MCU.
type Hertz uint32

const (
	Hz  Hertz = 1
	KHz Hertz = 1_000
	MHz Hertz = 1_000_000
)

// Hz returns f as a plain cycle count.
func (f Hertz) Hz() uint32 { return uint32(f) }

// KHz returns f in whole kilohertz, truncating.
func (f Hertz) KHz() uint32 { return uint32(f / KHz) }

// MHz returns f in whole megahertz, truncating.
func (f Hertz) MHz() uint32 { return uint32(f / MHz) }

// String picks the largest unit that divides f exactly, so 8000000 reads
// as "8MHz" while 32768 stays "32768Hz". No fmt; safe for MCU builds.
func (f Hertz) String() string {
	var buf [10]byte
	switch {
	case f >= MHz && f%MHz == 0:
		return string(conv.Utoa(buf[:], uint64(f/MHz))) + "MHz"
	case f >= KHz && f%KHz == 0:
		return string(conv.Utoa(buf[:], uint64(f/KHz))) + "KHz"
	default:
		return string(conv.Utoa(buf[:], uint64(f))) + "Hz"
	}
}

var ErrParse = errors.New("unparseable frequency")

// Parse reads strings like "168mhz", "32khz" or "8000000". Unit suffixes
// are case-insensitive; a bare number means hertz.
func Parse(s string) (Hertz, error) {
	i := 0
	var n uint64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + uint64(s[i]-'0')
		if n > 0xFFFF_FFFF {
			return 0, ErrParse
		}
		i++
	}
	if i == 0 {
		return 0, ErrParse
	}
	suffix := s[i:]
	if len(suffix) > 3 {
		return 0, ErrParse
	}
	// ASCII lowercase by hand keeps strings out of MCU builds.
	var u [3]byte
	for j := 0; j < len(suffix); j++ {
		c := suffix[j]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		u[j] = c
	}
	unit := Hz
	switch string(u[:len(suffix)]) {
	case "", "hz":
		unit = Hz
	case "khz":
		unit = KHz
	case "mhz":
		unit = MHz
	default:
		return 0, ErrParse
	}
	v := n * uint64(unit)
	if v > 0xFFFF_FFFF {
		return 0, ErrParse
	}
	return Hertz(v), nil
}
