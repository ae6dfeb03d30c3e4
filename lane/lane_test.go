package lane

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		k       int
		bounded bool
		want    Width
	}{
		{0, false, ThirtyTwo},
		{3, false, ThirtyTwo},
		{0, true, Eight},
		{1, true, Eight},
		{254, true, Eight},
		{255, true, Sixteen},
		{65534, true, Sixteen},
		{65535, true, ThirtyTwo},
		{1 << 20, true, ThirtyTwo},
	}
	for _, tt := range tests {
		if got := Select(tt.k, tt.bounded); got != tt.want {
			t.Errorf("Select(%d, %v) = %s, want %s", tt.k, tt.bounded, got, tt.want)
		}
	}
}

// TestSentinelFits checks the selector never picks a width that cannot hold k+1.
func TestSentinelFits(t *testing.T) {
	for _, k := range []int{0, 1, 100, 253, 254, 255, 256, 1000, 65533, 65534, 65535, 70000} {
		w := Select(k, true)
		if uint64(k+1) > w.Max() {
			t.Errorf("Select(%d) = %s cannot hold sentinel %d", k, w, k+1)
		}
		Check(w, k+1)
	}
}

func TestForValue(t *testing.T) {
	tests := []struct {
		v    int
		want Width
	}{
		{0, Eight},
		{255, Eight},
		{256, Sixteen},
		{65535, Sixteen},
		{65536, ThirtyTwo},
	}
	for _, tt := range tests {
		if got := ForValue(tt.v); got != tt.want {
			t.Errorf("ForValue(%d) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestWidthAccessors(t *testing.T) {
	tests := []struct {
		w    Width
		bits int
		max  uint64
		name string
	}{
		{Eight, 8, 255, "u8"},
		{Sixteen, 16, 65535, "u16"},
		{ThirtyTwo, 32, 1<<32 - 1, "u32"},
	}
	for _, tt := range tests {
		if tt.w.Bits() != tt.bits || tt.w.Max() != tt.max || tt.w.String() != tt.name {
			t.Errorf("%v: Bits=%d Max=%d String=%q", tt.w, tt.w.Bits(), tt.w.Max(), tt.w.String())
		}
	}
}

func TestCheckPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Check(Eight, 256) did not panic")
		}
	}()
	Check(Eight, 256)
}
