package console

import "github.com/fengjixuchui/Simple-Kernel-sub001/device/video/console/font"

// BoundsFault classifies a rasterizer bounds failure. Failures are reported
// by flooding the framebuffer with a per-class diagnostic color; the draw
// call itself always returns normally.
type BoundsFault uint8

const (
	// FaultNone indicates a successful draw.
	FaultNone BoundsFault = iota

	// FaultOversized indicates a bitmap that cannot fit the framebuffer
	// at the requested scale regardless of position.
	FaultOversized

	// FaultOrigin indicates a draw origin outside the visible
	// resolution.
	FaultOrigin

	// FaultEdge indicates a bitmap that starts inside the framebuffer
	// but overflows its right or bottom edge.
	FaultEdge
)

// DrawBitmap renders a packed monochrome bitmap into the framebuffer with
// its top-left corner at (x + cell*widthBits*scale, y). The bitmap layout
// matches the font package: row-major, rows padded to a byte boundary, bit 7
// leftmost, bit value 1 selecting fg. Every logical pixel becomes a
// scale*scale block. Clear bits paint hl unless hl is ColorTransparent, in
// which case the underlying pixels are preserved.
//
// The cell index positions one glyph within a string sharing a single base
// coordinate; plain bitmap draws pass 0.
//
// This is the canonical plain nested-loop writer. A read-before-write check
// or a wide vector fill can be layered on top as pure performance
// optimizations without changing any of the behavior below.
func (fb *Framebuffer) DrawBitmap(data []byte, heightPx, widthBits uint32, x, y, cell, scale uint32, fg, hl uint32) BoundsFault {
	if scale == 0 {
		scale = 1
	}

	scaledW := widthBits * scale
	scaledH := heightPx * scale

	if scaledW > fb.width || scaledH > fb.height {
		fb.Clear(floodOversizedColor)
		return FaultOversized
	}

	originX := x + cell*scaledW
	if originX >= fb.width || y >= fb.height {
		fb.Clear(floodOriginColor)
		return FaultOrigin
	}

	if originX+scaledW > fb.width || y+scaledH > fb.height {
		fb.Clear(floodEdgeColor)
		return FaultEdge
	}

	bytesPerRow := (widthBits + 7) / 8

	var (
		rowOffset uint32
		mask      uint8
		rowData   uint8
	)

	for row := uint32(0); row < heightPx; row++ {
		rowOffset = row * bytesPerRow
		rowData = data[rowOffset]
		mask = 1 << 7

		for col := uint32(0); col < widthBits; col, mask = col+1, mask>>1 {
			// If mask becomes zero while we are still in this loop
			// then the bitmap uses > 1 byte per row. We need to
			// fetch the next byte and reset the mask.
			if mask == 0 {
				rowOffset++
				rowData = data[rowOffset]
				mask = 1 << 7
			}

			var color uint32
			if rowData&mask != 0 {
				color = fg
			} else {
				if hl == ColorTransparent {
					continue
				}
				color = hl
			}

			blockX := originX + col*scale
			blockY := y + row*scale
			for sy := uint32(0); sy < scale; sy++ {
				for sx := uint32(0); sx < scale; sx++ {
					fb.SetPixel(blockX+sx, blockY+sy, color)
				}
			}
		}
	}

	return FaultNone
}

// DrawGlyph renders one font glyph; see DrawBitmap for the coordinate and
// color semantics.
func (fb *Framebuffer) DrawGlyph(f *font.Font, ch byte, x, y, cell, scale uint32, fg, hl uint32) BoundsFault {
	return fb.DrawBitmap(f.Glyph(ch), f.GlyphHeight, f.GlyphWidth, x, y, cell, scale, fg, hl)
}
