// serial/serial.go
// Package serial drives the F40x USARTs in polled 8N1 mode.
package serial

import (
	"errors"

	"f4hal-go/freq"
	"f4hal-go/rcc"
	"f4hal-go/stm32"
)

var ErrBaudRate = errors.New("unachievable baud rate")

// USART is one configured port. Constructors pin each instance to the
// bus it lives on, so the divisor maths always sees the right clock.
type USART struct {
	p    *stm32.USART_Type
	pclk freq.Hertz
}

// NewUSART1 opens USART1's clock gate on APB2.
func NewUSART1(block *stm32.USART_Type, apb2 *rcc.APB2, clk rcc.Clocks) *USART {
	apb2.Enable(stm32.RCC_APB2ENR_USART1EN)
	return &USART{p: block, pclk: clk.PCLK2()}
}

// NewUSART2 opens USART2's clock gate on APB1.
func NewUSART2(block *stm32.USART_Type, apb1 *rcc.APB1, clk rcc.Clocks) *USART {
	apb1.Enable(stm32.RCC_APB1ENR_USART2EN)
	return &USART{p: block, pclk: clk.PCLK1()}
}

// NewUSART6 opens USART6's clock gate on APB2.
func NewUSART6(block *stm32.USART_Type, apb2 *rcc.APB2, clk rcc.Clocks) *USART {
	apb2.Enable(stm32.RCC_APB2ENR_USART6EN)
	return &USART{p: block, pclk: clk.PCLK2()}
}

type Config struct {
	BaudRate uint32
}

func DefaultConfig() Config {
	return Config{BaudRate: 115200}
}

// Configure programs the baud divisor and enables the port both ways.
// With 16x oversampling the divisor register wants pclk/baud as a 12.4
// fixed-point value, which is the plain integer quotient.
func (u *USART) Configure(cfg Config) error {
	if cfg.BaudRate == 0 {
		return ErrBaudRate
	}
	div := uint32(u.pclk) / cfg.BaudRate
	if div < 16 {
		return ErrBaudRate
	}
	u.p.BRR.Set(div)
	u.p.CR1.Set(stm32.USART_CR1_UE | stm32.USART_CR1_TE | stm32.USART_CR1_RE)
	return nil
}

// WriteByte blocks until the transmit buffer drains, then loads b.
func (u *USART) WriteByte(b byte) error {
	for !u.p.SR.HasBits(stm32.USART_SR_TXE) {
	}
	u.p.DR.Set(uint32(b))
	return nil
}

// ReadByte blocks until a byte arrives.
func (u *USART) ReadByte() (byte, error) {
	for !u.p.SR.HasBits(stm32.USART_SR_RXNE) {
	}
	return byte(u.p.DR.Get()), nil
}

// Write sends p one byte at a time, reporting how much of it went out.
func (u *USART) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := u.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}
