// mmio/trace_host.go
//go:build !stm32f4

package mmio

import "unsafe"

// Write is one journalled register store.
type Write struct {
	Addr  uintptr
	Value uint32
}

var trace []Write

func record(r *Register32, v uint32) {
	trace = append(trace, Write{Addr: uintptr(unsafe.Pointer(r)), Value: v})
}

// ResetTrace clears the write journal. Tests call it ahead of the
// sequence they want to observe.
func ResetTrace() { trace = trace[:0] }

// Trace returns a copy of the journalled stores since the last
// ResetTrace, oldest first.
func Trace() []Write {
	out := make([]Write, len(trace))
	copy(out, trace)
	return out
}
