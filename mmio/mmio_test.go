package mmio

import "testing"

func TestBitOps(t *testing.T) {
	var r Register32
	r.Set(0x0000_00F0)
	if r.Get() != 0xF0 {
		t.Fatalf("Get = %#x", r.Get())
	}
	r.SetBits(0x0F)
	if r.Get() != 0xFF {
		t.Fatalf("SetBits: %#x", r.Get())
	}
	r.ClearBits(0xF0)
	if r.Get() != 0x0F {
		t.Fatalf("ClearBits: %#x", r.Get())
	}
	if !r.HasBits(0x01) || r.HasBits(0x10) {
		t.Fatalf("HasBits: %#x", r.Get())
	}
}

func TestReplaceBitsTouchesOnlyTheField(t *testing.T) {
	var r Register32
	r.Load(0xFFFF_FFFF)
	// 3-bit field at bit 10, pre-shifted convention.
	r.ReplaceBits(0b101<<10, 0b111<<10, 0)
	want := uint32(0xFFFF_FFFF)&^(0b111<<10) | 0b101<<10
	if r.Get() != want {
		t.Fatalf("ReplaceBits: got %#x want %#x", r.Get(), want)
	}
}

func TestWriteRule(t *testing.T) {
	var r Register32
	r.SetRule(func(old, next uint32) uint32 {
		if next&0x1 != 0 {
			return next | 0x2 // ready tracks enable
		}
		return next &^ 0x2
	})
	r.SetBits(0x1)
	if r.Get() != 0x3 {
		t.Fatalf("rule on set: %#x", r.Get())
	}
	r.ClearBits(0x1)
	if r.Get() != 0x0 {
		t.Fatalf("rule on clear: %#x", r.Get())
	}
}

func TestTraceOrderAndValues(t *testing.T) {
	var a, b Register32
	ResetTrace()
	a.Set(1)
	b.Set(2)
	a.SetBits(4)
	tr := Trace()
	if len(tr) != 3 {
		t.Fatalf("trace length %d", len(tr))
	}
	if tr[0].Value != 1 || tr[1].Value != 2 || tr[2].Value != 5 {
		t.Fatalf("trace values %v", tr)
	}
	if tr[0].Addr != tr[2].Addr || tr[0].Addr == tr[1].Addr {
		t.Fatalf("trace addrs %v", tr)
	}
	// Load stays off the record.
	ResetTrace()
	a.Load(9)
	if len(Trace()) != 0 {
		t.Fatalf("Load journalled")
	}
}
