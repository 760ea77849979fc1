// stm32/sim_host.go
//go:build !stm32f4

package stm32

import (
	"reflect"

	"f4hal-go/mmio"
	"f4hal-go/x/conv"
)

// Sim is a RAM-backed register file for host-side tests and tools. It
// carries the hardware reset values and write rules for the behaviour the
// silicon provides on its own: oscillator ready flags track their enable
// bits, the clock status field tracks the selected source, and a few
// peripheral status flags respond to data writes.
type Sim struct {
	RCC    RCC_Type
	FLASH  FLASH_Type
	GPIOA  GPIO_Type
	GPIOB  GPIO_Type
	GPIOC  GPIO_Type
	GPIOD  GPIO_Type
	USART1 USART_Type
	USART2 USART_Type
	USART6 USART_Type
	SPI1   SPI_Type
	SPI2   SPI_Type
	SPI3   SPI_Type
	TIM1   TIM_Type
	TIM2   TIM_Type
	TIM3   TIM_Type
	TIM4   TIM_Type
	TIM5   TIM_Type

	byAddr map[uintptr]string
}

// NewSim returns a register file in its power-on state.
func NewSim() *Sim {
	s := &Sim{}
	s.reset()
	s.wire()
	s.index()
	return s
}

// reset applies the RM0090 reset values.
func (s *Sim) reset() {
	s.RCC.CR.Load(0x0000_0083) // HSION|HSIRDY, default HSITRIM
	s.RCC.PLLCFGR.Load(0x2400_3010)
	s.GPIOA.MODER.Load(0xA800_0000) // SWD/JTAG pins
	s.GPIOA.PUPDR.Load(0x6400_0000)
	s.GPIOB.MODER.Load(0x0000_0280)
	s.GPIOB.OSPEEDR.Load(0x0000_00C0)
	s.GPIOB.PUPDR.Load(0x0000_0100)
	for _, u := range s.usarts() {
		u.SR.Load(USART_SR_TC | USART_SR_TXE)
	}
	for _, sp := range s.spis() {
		sp.SR.Load(SPI_SR_TXE)
	}
}

// wire installs the write rules standing in for hardware behaviour.
func (s *Sim) wire() {
	s.RCC.CR.SetRule(func(_, next uint32) uint32 {
		next = mirrorReady(next, RCC_CR_HSION, RCC_CR_HSIRDY)
		next = mirrorReady(next, RCC_CR_HSEON, RCC_CR_HSERDY)
		next = mirrorReady(next, RCC_CR_PLLON, RCC_CR_PLLRDY)
		return next
	})
	s.RCC.CFGR.SetRule(func(_, next uint32) uint32 {
		sw := next & RCC_CFGR_SW_Msk >> RCC_CFGR_SW_Pos
		return next&^RCC_CFGR_SWS_Msk | sw<<RCC_CFGR_SWS_Pos
	})
	for _, g := range s.gpios() {
		g := g // pin per-iteration binding under pre-1.22 loop semantics
		g.BSRR.SetRule(func(_, next uint32) uint32 {
			odr := g.ODR.Get()
			odr |= next & 0xFFFF
			odr &^= next >> 16
			g.ODR.Load(odr)
			return 0 // BSRR reads as zero
		})
	}
	for _, u := range s.usarts() {
		u := u // pin per-iteration binding under pre-1.22 loop semantics
		u.DR.SetRule(func(_, next uint32) uint32 {
			u.SR.Load(u.SR.Get() | USART_SR_TC | USART_SR_TXE)
			return next
		})
	}
	for _, sp := range s.spis() {
		sp := sp // pin per-iteration binding under pre-1.22 loop semantics
		sp.DR.SetRule(func(_, next uint32) uint32 {
			// Full duplex: a transmit always shifts a byte back in.
			sp.SR.Load(sp.SR.Get() | SPI_SR_RXNE)
			return next
		})
	}
	for _, tm := range s.tims() {
		tm := tm // pin per-iteration binding under pre-1.22 loop semantics
		tm.EGR.SetRule(func(_, next uint32) uint32 {
			if next&TIM_EGR_UG != 0 {
				tm.SR.Load(tm.SR.Get() | TIM_SR_UIF)
				tm.CNT.Load(0)
			}
			return 0 // EGR reads as zero
		})
	}
}

// mirrorReady makes a ready flag track its enable bit, standing in for
// the start-up time the real oscillators need.
func mirrorReady(v, on, rdy uint32) uint32 {
	if v&on != 0 {
		return v | rdy
	}
	return v &^ rdy
}

func (s *Sim) gpios() []*GPIO_Type {
	return []*GPIO_Type{&s.GPIOA, &s.GPIOB, &s.GPIOC, &s.GPIOD}
}

func (s *Sim) usarts() []*USART_Type {
	return []*USART_Type{&s.USART1, &s.USART2, &s.USART6}
}

func (s *Sim) spis() []*SPI_Type {
	return []*SPI_Type{&s.SPI1, &s.SPI2, &s.SPI3}
}

func (s *Sim) tims() []*TIM_Type {
	return []*TIM_Type{&s.TIM1, &s.TIM2, &s.TIM3, &s.TIM4, &s.TIM5}
}

var reg32Type = reflect.TypeOf(mmio.Register32{})

// index walks the register blocks and records each cell's address under
// its "BLOCK.REG" name, for resolving journal entries.
func (s *Sim) index() {
	s.byAddr = make(map[uintptr]string)
	sv := reflect.ValueOf(s).Elem()
	for i := 0; i < sv.NumField(); i++ {
		block := sv.Field(i)
		if block.Kind() != reflect.Struct {
			continue
		}
		bname := sv.Type().Field(i).Name
		bt := block.Type()
		for j := 0; j < bt.NumField(); j++ {
			f := bt.Field(j)
			if f.Type != reg32Type {
				continue
			}
			s.byAddr[block.Field(j).Addr().Pointer()] = bname + "." + f.Name
		}
	}
}

// Resolve names the register a journalled write hit, "RCC.CFGR" style.
// Unknown addresses render as hex.
func (s *Sim) Resolve(addr uintptr) string {
	if name, ok := s.byAddr[addr]; ok {
		return name
	}
	var buf [8]byte
	return "0x" + string(conv.U32Hex(buf[:], uint32(addr)))
}

// TraceNames maps a write journal to register names, oldest first.
func (s *Sim) TraceNames(writes []mmio.Write) []string {
	out := make([]string, len(writes))
	for i, w := range writes {
		out[i] = s.Resolve(w.Addr)
	}
	return out
}

// FormatWrite renders one journalled write as "RCC.CFGR = 0x00001402".
func (s *Sim) FormatWrite(w mmio.Write) string {
	var buf [8]byte
	return s.Resolve(w.Addr) + " = 0x" + string(conv.U32Hex(buf[:], w.Value))
}
