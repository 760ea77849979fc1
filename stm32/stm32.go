// stm32/stm32.go
// Package stm32 describes the F40x register blocks this module drives.
// Layouts and field encodings follow RM0090; names follow the convention
// of generated device packages (BLOCK_REG_FIELD with _Pos/_Msk pairs and
// pre-shifted masks).
package stm32

import "f4hal-go/mmio"

// Block base addresses on the F40x bus matrix.
const (
	TIM2_BASE   = 0x4000_0000
	TIM3_BASE   = 0x4000_0400
	TIM4_BASE   = 0x4000_0800
	TIM5_BASE   = 0x4000_0C00
	SPI2_BASE   = 0x4000_3800
	SPI3_BASE   = 0x4000_3C00
	USART2_BASE = 0x4000_4400
	TIM1_BASE   = 0x4001_0000
	USART1_BASE = 0x4001_1000
	USART6_BASE = 0x4001_1400
	SPI1_BASE   = 0x4001_3000
	GPIOA_BASE  = 0x4002_0000
	GPIOB_BASE  = 0x4002_0400
	GPIOC_BASE  = 0x4002_0800
	GPIOD_BASE  = 0x4002_0C00
	GPIOE_BASE  = 0x4002_1000
	RCC_BASE    = 0x4002_3800
	FLASH_BASE  = 0x4002_3C00
)

// RCC_Type maps the reset and clock control block.
type RCC_Type struct {
	CR         mmio.Register32
	PLLCFGR    mmio.Register32
	CFGR       mmio.Register32
	CIR        mmio.Register32
	AHB1RSTR   mmio.Register32
	AHB2RSTR   mmio.Register32
	AHB3RSTR   mmio.Register32
	_          [4]byte
	APB1RSTR   mmio.Register32
	APB2RSTR   mmio.Register32
	_          [8]byte
	AHB1ENR    mmio.Register32
	AHB2ENR    mmio.Register32
	AHB3ENR    mmio.Register32
	_          [4]byte
	APB1ENR    mmio.Register32
	APB2ENR    mmio.Register32
	_          [8]byte
	AHB1LPENR  mmio.Register32
	AHB2LPENR  mmio.Register32
	AHB3LPENR  mmio.Register32
	_          [4]byte
	APB1LPENR  mmio.Register32
	APB2LPENR  mmio.Register32
	_          [8]byte
	BDCR       mmio.Register32
	CSR        mmio.Register32
	_          [8]byte
	SSCGR      mmio.Register32
	PLLI2SCFGR mmio.Register32
}

// RCC clock control register.
const (
	RCC_CR_HSION  = 1 << 0
	RCC_CR_HSIRDY = 1 << 1
	RCC_CR_HSEON  = 1 << 16
	RCC_CR_HSERDY = 1 << 17
	RCC_CR_HSEBYP = 1 << 18
	RCC_CR_CSSON  = 1 << 19
	RCC_CR_PLLON  = 1 << 24
	RCC_CR_PLLRDY = 1 << 25
)

// RCC PLL configuration register.
const (
	RCC_PLLCFGR_PLLM_Pos   = 0
	RCC_PLLCFGR_PLLM_Msk   = 0x3F << RCC_PLLCFGR_PLLM_Pos
	RCC_PLLCFGR_PLLN_Pos   = 6
	RCC_PLLCFGR_PLLN_Msk   = 0x1FF << RCC_PLLCFGR_PLLN_Pos
	RCC_PLLCFGR_PLLP_Pos   = 16
	RCC_PLLCFGR_PLLP_Msk   = 0x3 << RCC_PLLCFGR_PLLP_Pos
	RCC_PLLCFGR_PLLSRC_Pos = 22
	RCC_PLLCFGR_PLLSRC_Msk = 0x1 << RCC_PLLCFGR_PLLSRC_Pos
	RCC_PLLCFGR_PLLQ_Pos   = 24
	RCC_PLLCFGR_PLLQ_Msk   = 0xF << RCC_PLLCFGR_PLLQ_Pos
)

// RCC clock configuration register.
const (
	RCC_CFGR_SW_Pos    = 0
	RCC_CFGR_SW_Msk    = 0x3 << RCC_CFGR_SW_Pos
	RCC_CFGR_SW_HSI    = 0b00
	RCC_CFGR_SW_HSE    = 0b01
	RCC_CFGR_SW_PLL    = 0b10
	RCC_CFGR_SWS_Pos   = 2
	RCC_CFGR_SWS_Msk   = 0x3 << RCC_CFGR_SWS_Pos
	RCC_CFGR_HPRE_Pos  = 4
	RCC_CFGR_HPRE_Msk  = 0xF << RCC_CFGR_HPRE_Pos
	RCC_CFGR_PPRE1_Pos = 10
	RCC_CFGR_PPRE1_Msk = 0x7 << RCC_CFGR_PPRE1_Pos
	RCC_CFGR_PPRE2_Pos = 13
	RCC_CFGR_PPRE2_Msk = 0x7 << RCC_CFGR_PPRE2_Pos
)

// RCC AHB1 peripheral gates.
const (
	RCC_AHB1ENR_GPIOAEN = 1 << 0
	RCC_AHB1ENR_GPIOBEN = 1 << 1
	RCC_AHB1ENR_GPIOCEN = 1 << 2
	RCC_AHB1ENR_GPIODEN = 1 << 3
	RCC_AHB1ENR_GPIOEEN = 1 << 4
	RCC_AHB1ENR_DMA1EN  = 1 << 21
	RCC_AHB1ENR_DMA2EN  = 1 << 22
)

// RCC APB1 peripheral gates.
const (
	RCC_APB1ENR_TIM2EN   = 1 << 0
	RCC_APB1ENR_TIM3EN   = 1 << 1
	RCC_APB1ENR_TIM4EN   = 1 << 2
	RCC_APB1ENR_TIM5EN   = 1 << 3
	RCC_APB1ENR_SPI2EN   = 1 << 14
	RCC_APB1ENR_SPI3EN   = 1 << 15
	RCC_APB1ENR_USART2EN = 1 << 17
	RCC_APB1ENR_USART3EN = 1 << 18
	RCC_APB1ENR_PWREN    = 1 << 28
)

// RCC APB2 peripheral gates.
const (
	RCC_APB2ENR_TIM1EN   = 1 << 0
	RCC_APB2ENR_USART1EN = 1 << 4
	RCC_APB2ENR_USART6EN = 1 << 5
	RCC_APB2ENR_SPI1EN   = 1 << 12
	RCC_APB2ENR_SYSCFGEN = 1 << 14
)

// FLASH_Type maps the flash interface block.
type FLASH_Type struct {
	ACR     mmio.Register32
	KEYR    mmio.Register32
	OPTKEYR mmio.Register32
	SR      mmio.Register32
	CR      mmio.Register32
	OPTCR   mmio.Register32
}

// FLASH access control register.
const (
	FLASH_ACR_LATENCY_Pos = 0
	FLASH_ACR_LATENCY_Msk = 0x7 << FLASH_ACR_LATENCY_Pos
	FLASH_ACR_PRFTEN      = 1 << 8
	FLASH_ACR_ICEN        = 1 << 9
	FLASH_ACR_DCEN        = 1 << 10
	FLASH_ACR_ICRST       = 1 << 11
	FLASH_ACR_DCRST       = 1 << 12
)

// GPIO_Type maps one GPIO port.
type GPIO_Type struct {
	MODER   mmio.Register32
	OTYPER  mmio.Register32
	OSPEEDR mmio.Register32
	PUPDR   mmio.Register32
	IDR     mmio.Register32
	ODR     mmio.Register32
	BSRR    mmio.Register32
	LCKR    mmio.Register32
	AFRL    mmio.Register32
	AFRH    mmio.Register32
}

// USART_Type maps one USART.
type USART_Type struct {
	SR   mmio.Register32
	DR   mmio.Register32
	BRR  mmio.Register32
	CR1  mmio.Register32
	CR2  mmio.Register32
	CR3  mmio.Register32
	GTPR mmio.Register32
}

// USART status and control bits.
const (
	USART_SR_RXNE = 1 << 5
	USART_SR_TC   = 1 << 6
	USART_SR_TXE  = 1 << 7

	USART_CR1_RE = 1 << 2
	USART_CR1_TE = 1 << 3
	USART_CR1_UE = 1 << 13
)

// SPI_Type maps one SPI controller.
type SPI_Type struct {
	CR1     mmio.Register32
	CR2     mmio.Register32
	SR      mmio.Register32
	DR      mmio.Register32
	CRCPR   mmio.Register32
	RXCRCR  mmio.Register32
	TXCRCR  mmio.Register32
	I2SCFGR mmio.Register32
	I2SPR   mmio.Register32
}

// SPI control and status bits.
const (
	SPI_CR1_CPHA   = 1 << 0
	SPI_CR1_CPOL   = 1 << 1
	SPI_CR1_MSTR   = 1 << 2
	SPI_CR1_BR_Pos = 3
	SPI_CR1_BR_Msk = 0x7 << SPI_CR1_BR_Pos
	SPI_CR1_SPE    = 1 << 6
	SPI_CR1_SSI    = 1 << 8
	SPI_CR1_SSM    = 1 << 9

	SPI_SR_RXNE = 1 << 0
	SPI_SR_TXE  = 1 << 1
	SPI_SR_BSY  = 1 << 7
)

// TIM_Type maps the shared front of the advanced and general-purpose
// timers; the driver only touches registers common to both.
type TIM_Type struct {
	CR1   mmio.Register32
	CR2   mmio.Register32
	SMCR  mmio.Register32
	DIER  mmio.Register32
	SR    mmio.Register32
	EGR   mmio.Register32
	CCMR1 mmio.Register32
	CCMR2 mmio.Register32
	CCER  mmio.Register32
	CNT   mmio.Register32
	PSC   mmio.Register32
	ARR   mmio.Register32
	RCR   mmio.Register32
	CCR1  mmio.Register32
	CCR2  mmio.Register32
	CCR3  mmio.Register32
	CCR4  mmio.Register32
	BDTR  mmio.Register32
	DCR   mmio.Register32
	DMAR  mmio.Register32
}

// TIM control, event and status bits.
const (
	TIM_CR1_CEN = 1 << 0
	TIM_CR1_URS = 1 << 2
	TIM_CR1_OPM = 1 << 3

	TIM_DIER_UIE = 1 << 0
	TIM_SR_UIF   = 1 << 0
	TIM_EGR_UG   = 1 << 0
)
