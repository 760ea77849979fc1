// stm32/periph_mcu.go
//go:build stm32f4

package stm32

import "unsafe"

// Register blocks at their F40x bus addresses.
var (
	TIM1   = (*TIM_Type)(unsafe.Pointer(uintptr(TIM1_BASE)))
	TIM2   = (*TIM_Type)(unsafe.Pointer(uintptr(TIM2_BASE)))
	TIM3   = (*TIM_Type)(unsafe.Pointer(uintptr(TIM3_BASE)))
	TIM4   = (*TIM_Type)(unsafe.Pointer(uintptr(TIM4_BASE)))
	TIM5   = (*TIM_Type)(unsafe.Pointer(uintptr(TIM5_BASE)))
	SPI1   = (*SPI_Type)(unsafe.Pointer(uintptr(SPI1_BASE)))
	SPI2   = (*SPI_Type)(unsafe.Pointer(uintptr(SPI2_BASE)))
	SPI3   = (*SPI_Type)(unsafe.Pointer(uintptr(SPI3_BASE)))
	USART1 = (*USART_Type)(unsafe.Pointer(uintptr(USART1_BASE)))
	USART2 = (*USART_Type)(unsafe.Pointer(uintptr(USART2_BASE)))
	USART6 = (*USART_Type)(unsafe.Pointer(uintptr(USART6_BASE)))
	GPIOA  = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOA_BASE)))
	GPIOB  = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOB_BASE)))
	GPIOC  = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOC_BASE)))
	GPIOD  = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOD_BASE)))
	GPIOE  = (*GPIO_Type)(unsafe.Pointer(uintptr(GPIOE_BASE)))
	RCC    = (*RCC_Type)(unsafe.Pointer(uintptr(RCC_BASE)))
	FLASH  = (*FLASH_Type)(unsafe.Pointer(uintptr(FLASH_BASE)))
)
