package bitmap

import "testing"

func TestRowStride(t *testing.T) {
	specs := []struct {
		widthBits uint32
		expStride uint32
	}{
		{1, 1},
		{8, 1},
		{9, 2},
		{17, 3},
		{24, 3},
		{27, 4},
	}

	for specIndex, spec := range specs {
		if got := RowStride(spec.widthBits); got != spec.expStride {
			t.Errorf("[spec %d] expected stride for %d bits to be %d; got %d", specIndex, spec.widthBits, spec.expStride, got)
		}
	}
}

func TestNibbleSwap(t *testing.T) {
	buf := []byte{0xab, 0xcd, 0x5f}
	NibbleSwap(buf, 1, 24)

	exp := []byte{0xba, 0xdc, 0xf5}
	for i, b := range exp {
		if buf[i] != b {
			t.Fatalf("expected byte %d to be %#x; got %#x", i, b, buf[i])
		}
	}
}

func TestNibbleSwapRoundTrip(t *testing.T) {
	orig := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc}
	buf := append([]byte(nil), orig...)

	NibbleSwap(buf, 2, 24)
	NibbleSwap(buf, 2, 24)

	for i, b := range orig {
		if buf[i] != b {
			t.Fatalf("expected double nibble-swap to restore byte %d to %#x; got %#x", i, b, buf[i])
		}
	}
}

func TestBitReverse(t *testing.T) {
	buf := []byte{0x80, 0x01, 0xb4}
	BitReverse(buf, 1, 24)

	exp := []byte{0x01, 0x80, 0x2d}
	for i, b := range exp {
		if buf[i] != b {
			t.Fatalf("expected byte %d to be %#x; got %#x", i, b, buf[i])
		}
	}
}

func TestBitReverseRoundTrip(t *testing.T) {
	orig := []byte{0x00, 0xff, 0x5a, 0xc3, 0x17, 0xe8, 0x01, 0x80}
	buf := append([]byte(nil), orig...)

	BitReverse(buf, 2, 32)
	BitReverse(buf, 2, 32)

	for i, b := range orig {
		if buf[i] != b {
			t.Fatalf("expected double bit-reverse to restore byte %d to %#x; got %#x", i, b, buf[i])
		}
	}
}

func TestMirror(t *testing.T) {
	specs := []struct {
		descr     string
		widthBits uint32
		height    uint32
		in        []byte
		exp       []byte
	}{
		{
			// 27-bit rows pad to an even 4 bytes/row
			"even stride",
			27, 2,
			[]byte{1, 2, 3, 4, 5, 6, 7, 8},
			[]byte{4, 3, 2, 1, 8, 7, 6, 5},
		},
		{
			// 17-bit rows pad to an odd 3 bytes/row; the center byte
			// stays in place
			"odd stride",
			17, 2,
			[]byte{1, 2, 3, 4, 5, 6},
			[]byte{3, 2, 1, 6, 5, 4},
		},
	}

	for specIndex, spec := range specs {
		buf := append([]byte(nil), spec.in...)
		Mirror(buf, spec.height, spec.widthBits)

		for i, b := range spec.exp {
			if buf[i] != b {
				t.Errorf("[spec %d] %s: expected byte %d to be %d; got %d", specIndex, spec.descr, i, b, buf[i])
			}
		}

		// Mirror must be an involution for both stride parities.
		Mirror(buf, spec.height, spec.widthBits)
		for i, b := range spec.in {
			if buf[i] != b {
				t.Errorf("[spec %d] %s: expected double mirror to restore byte %d to %d; got %d", specIndex, spec.descr, i, b, buf[i])
			}
		}
	}
}
