// Package bitmap provides allocation-free transforms over packed monochrome
// bitmaps. A bitmap consists of height rows of RowStride(widthBits) bytes
// each, row-major, with bit 7 of each byte being the leftmost pixel — the
// same layout the console rasterizer consumes, so transformed output remains
// a valid rasterizer input.
//
// All three transforms operate in place and are involutions: applying one
// twice restores the original buffer.
package bitmap

// RowStride returns the number of bytes that store one row of a bitmap with
// the given width in bits. Rows are padded to a byte boundary.
func RowStride(widthBits uint32) uint32 {
	return (widthBits + 7) / 8
}

// NibbleSwap exchanges the high and low 4 bits of every byte in the bitmap.
func NibbleSwap(buf []byte, height, widthBits uint32) {
	size := int(height * RowStride(widthBits))
	if size > len(buf) {
		size = len(buf)
	}

	for i := 0; i < size; i++ {
		buf[i] = buf[i]<<4 | buf[i]>>4
	}
}

// BitReverse reverses the bit order within every byte of the bitmap.
func BitReverse(buf []byte, height, widthBits uint32) {
	size := int(height * RowStride(widthBits))
	if size > len(buf) {
		size = len(buf)
	}

	for i := 0; i < size; i++ {
		b := buf[i]
		b = b<<4 | b>>4
		b = (b&0x33)<<2 | (b&0xcc)>>2
		b = (b&0x55)<<1 | (b&0xaa)>>1
		buf[i] = b
	}
}

// Mirror reflects each row of the bitmap end-to-end at byte granularity.
// Rows with an odd byte count leave their center byte in place so that it is
// neither skipped nor processed twice. Combine Mirror with BitReverse to
// obtain a pixel-exact horizontal flip of a byte-aligned bitmap.
func Mirror(buf []byte, height, widthBits uint32) {
	stride := int(RowStride(widthBits))
	if stride == 0 {
		return
	}

	for row := 0; row < int(height); row++ {
		start := row * stride
		end := start + stride - 1
		if end >= len(buf) {
			break
		}

		// Converging swap; for odd strides the indices meet on the
		// center byte and the loop stops before touching it.
		for l, r := start, end; l < r; l, r = l+1, r-1 {
			buf[l], buf[r] = buf[r], buf[l]
		}
	}
}
