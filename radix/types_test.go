package radix

import "testing"

type port uint16

type event struct {
	port port
	name string
}

func (e event) RadixKey() uint16 { return uint16(e.port) }

func TestKeyWidth(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"uint8", KeyWidth[uint8](), 8},
		{"uint16", KeyWidth[uint16](), 16},
		{"uint32", KeyWidth[uint32](), 32},
		{"uint64", KeyWidth[uint64](), 64},
		{"Uint128", KeyWidth[Uint128](), 128},
		{"named_uint16", KeyWidth[port](), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("KeyWidth = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestWidthOf(t *testing.T) {
	if got := WidthOf[event, uint16](); got != 16 {
		t.Errorf("WidthOf[event] = %d, want 16", got)
	}
	if got := WidthOf[Uint128Key, uint64](); got != 64 {
		t.Errorf("WidthOf[Uint128Key] = %d, want 64", got)
	}
}

// Uint128Key projects onto the low half only.
type Uint128Key Uint128

func (u Uint128Key) RadixKey() uint64 { return u.Lo }

func TestUint128Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Uint128
		want int
	}{
		{"equal", Uint128{1, 2}, Uint128{1, 2}, 0},
		{"hi_less", Uint128{0, ^uint64(0)}, Uint128{1, 0}, -1},
		{"hi_greater", Uint128{2, 0}, Uint128{1, ^uint64(0)}, 1},
		{"lo_less", Uint128{5, 1}, Uint128{5, 2}, -1},
		{"lo_greater", Uint128{5, 3}, Uint128{5, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := tt.a.Less(tt.b); got != (tt.want < 0) {
				t.Errorf("Less = %v, want %v", got, tt.want < 0)
			}
		})
	}
}

func TestUint128Byte(t *testing.T) {
	u := Uint128{Hi: 0x0F0E0D0C0B0A0908, Lo: 0x0706050403020100}
	for i := range 16 {
		if got := u.Byte(i); got != uint8(i) {
			t.Errorf("Byte(%d) = %#x, want %#x", i, got, i)
		}
	}
	if u.RadixKey() != u {
		t.Errorf("RadixKey() = %v, want identity", u.RadixKey())
	}
}
