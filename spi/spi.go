// spi/spi.go
// Package spi drives the F40x SPI blocks as polled full-duplex masters.
package spi

import (
	"errors"

	"tinygo.org/x/drivers"

	"f4hal-go/freq"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

var (
	ErrBaudRate      = errors.New("unachievable SPI clock")
	ErrMode          = errors.New("SPI mode out of range")
	ErrSliceMismatch = errors.New("tx and rx lengths differ")
)

// SPI is one configured block. Constructors pin each instance to its
// bus so the prescaler maths sees the right clock.
type SPI struct {
	p    *stm32.SPI_Type
	pclk freq.Hertz
}

var _ drivers.SPI = (*SPI)(nil)

// NewSPI1 opens SPI1's clock gate on APB2.
func NewSPI1(block *stm32.SPI_Type, apb2 *rcc.APB2, clk rcc.Clocks) *SPI {
	apb2.Enable(stm32.RCC_APB2ENR_SPI1EN)
	return &SPI{p: block, pclk: clk.PCLK2()}
}

// NewSPI2 opens SPI2's clock gate on APB1.
func NewSPI2(block *stm32.SPI_Type, apb1 *rcc.APB1, clk rcc.Clocks) *SPI {
	apb1.Enable(stm32.RCC_APB1ENR_SPI2EN)
	return &SPI{p: block, pclk: clk.PCLK1()}
}

// NewSPI3 opens SPI3's clock gate on APB1.
func NewSPI3(block *stm32.SPI_Type, apb1 *rcc.APB1, clk rcc.Clocks) *SPI {
	apb1.Enable(stm32.RCC_APB1ENR_SPI3EN)
	return &SPI{p: block, pclk: clk.PCLK1()}
}

// Config describes a master setup. Mode is the usual 0..3 CPOL/CPHA
// encoding.
type Config struct {
	Frequency freq.Hertz
	Mode      uint8
}

func DefaultConfig() Config {
	return Config{Frequency: 1 * freq.MHz}
}

// Configure programs the block as a software-NSS master at the fastest
// prescaler tap not above cfg.Frequency.
func (s *SPI) Configure(cfg Config) error {
	if cfg.Mode > 3 {
		return ErrMode
	}
	br, err := s.baudBits(cfg.Frequency)
	if err != nil {
		return err
	}
	cr1 := uint32(stm32.SPI_CR1_MSTR | stm32.SPI_CR1_SSM | stm32.SPI_CR1_SSI | stm32.SPI_CR1_SPE)
	cr1 |= br << stm32.SPI_CR1_BR_Pos
	if cfg.Mode&0b10 != 0 {
		cr1 |= stm32.SPI_CR1_CPOL
	}
	if cfg.Mode&0b01 != 0 {
		cr1 |= stm32.SPI_CR1_CPHA
	}
	s.p.CR1.Set(cr1)
	return nil
}

// baudBits picks the smallest divider (pclk/2 .. pclk/256) that lands at
// or below target.
func (s *SPI) baudBits(target freq.Hertz) (uint32, error) {
	if target == 0 {
		return 0, ErrBaudRate
	}
	for br := uint32(0); br < 8; br++ {
		if s.pclk>>(br+1) <= target {
			return br, nil
		}
	}
	return 0, ErrBaudRate
}

// Transfer clocks one byte out and returns the byte clocked in.
func (s *SPI) Transfer(b byte) (byte, error) {
	for !s.p.SR.HasBits(stm32.SPI_SR_TXE) {
	}
	s.p.DR.Set(uint32(b))
	for !s.p.SR.HasBits(stm32.SPI_SR_RXNE) {
	}
	return byte(s.p.DR.Get()), nil
}

// Tx clocks w out while filling r. A nil w sends zeroes, a nil r
// discards the inbound bytes, and mismatched non-nil lengths are an
// error.
func (s *SPI) Tx(w, r []byte) error {
	switch {
	case w == nil:
		for i := range r {
			b, err := s.Transfer(0)
			if err != nil {
				return err
			}
			r[i] = b
		}
	case r == nil:
		for _, b := range w {
			if _, err := s.Transfer(b); err != nil {
				return err
			}
		}
	case len(w) != len(r):
		return ErrSliceMismatch
	default:
		for i, b := range w {
			in, err := s.Transfer(b)
			if err != nil {
				return err
			}
			r[i] = in
		}
	}
	return nil
}
