package console

import (
	"unsafe"

	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/errors"
)

// Framebuffer describes one linear 32bpp BGRX framebuffer. The descriptor is
// immutable for the life of a session; zero or more instances may coexist
// when the firmware hands off multiple displays.
//
// All address computations go through pixOffset, which multiplies by the
// scanline stride. The stride is expressed in pixels and may exceed the
// visible width due to hardware padding; using the width instead corrupts
// every row but the first, so no other code path may derive pixel offsets
// on its own.
type Framebuffer struct {
	width  uint32
	height uint32
	stride uint32
	pix    []uint32
}

// NewFramebuffer wraps an existing pixel slice. It is the constructor used
// by tests and host-side tools, which substitute RAM for mapped video
// memory.
func NewFramebuffer(width, height, stride uint32, pix []uint32) (*Framebuffer, error) {
	if width == 0 || height == 0 || stride < width || uint64(len(pix)) < uint64(stride)*uint64(height) {
		return nil, errors.ErrBadFramebufferGeometry
	}

	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
	}, nil
}

// NewFramebufferAt wraps the physical framebuffer region at base. The boot
// environment identity-maps all physical memory, so the base address can be
// dereferenced directly.
func NewFramebufferAt(base uintptr, width, height, stride uint32) (*Framebuffer, error) {
	if base == 0 {
		return nil, errors.ErrBadFramebufferGeometry
	}

	pix := unsafe.Slice((*uint32)(unsafe.Pointer(base)), uint64(stride)*uint64(height))
	return NewFramebuffer(width, height, stride, pix)
}

// Width returns the visible horizontal resolution in pixels.
func (fb *Framebuffer) Width() uint32 { return fb.width }

// Height returns the visible vertical resolution in pixels.
func (fb *Framebuffer) Height() uint32 { return fb.height }

// Stride returns the scanline stride in pixels.
func (fb *Framebuffer) Stride() uint32 { return fb.stride }

// Pix exposes the raw pixel slice. Host-side tools use it to present the
// framebuffer contents; kernel code goes through the drawing primitives.
func (fb *Framebuffer) Pix() []uint32 { return fb.pix }

// pixOffset returns the linear offset of the pixel at (x,y) and reports
// whether the coordinate lies within the visible resolution.
func (fb *Framebuffer) pixOffset(x, y uint32) (uint32, bool) {
	if x >= fb.width || y >= fb.height {
		return 0, false
	}
	return y*fb.stride + x, true
}

// SetPixel writes a single pixel. Out-of-bounds coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y uint32, color uint32) {
	if offset, ok := fb.pixOffset(x, y); ok {
		fb.pix[offset] = color
	}
}

// Pixel returns the pixel at (x,y), or 0 when the coordinate is out of
// bounds.
func (fb *Framebuffer) Pixel(x, y uint32) uint32 {
	if offset, ok := fb.pixOffset(x, y); ok {
		return fb.pix[offset]
	}
	return 0
}

// Fill sets the contents of the specified rectangular region to the
// requested color. The region is clipped against the visible resolution.
func (fb *Framebuffer) Fill(x, y, width, height uint32, color uint32) {
	if x >= fb.width || y >= fb.height {
		return
	}

	if x+width > fb.width {
		width = fb.width - x
	}
	if y+height > fb.height {
		height = fb.height - y
	}

	for row := y; row < y+height; row++ {
		offset, _ := fb.pixOffset(x, row)
		for end := offset + width; offset < end; offset++ {
			fb.pix[offset] = color
		}
	}
}

// Clear floods the entire visible framebuffer with the requested color.
// Padding pixels beyond the visible width are left untouched.
func (fb *Framebuffer) Clear(color uint32) {
	fb.Fill(0, 0, fb.width, fb.height, color)
}

// flashSpinCycles controls how long the visual bell stays inverted. The
// delay is a counted spin because no timer hardware is programmed at the
// point the console runs.
var flashSpinCycles = 1 << 22

// spinSink keeps the flash delay loop observable so it is not optimized
// away.
var spinSink uint32

// Flash implements the visual bell: the framebuffer contents are inverted,
// held for a spin delay and inverted back. The net content is unchanged,
// which keeps the operation safe to issue at any cursor position.
func (fb *Framebuffer) Flash() {
	fb.invert()
	for i := 0; i < flashSpinCycles; i++ {
		spinSink++
	}
	fb.invert()
}

// invert XORs every visible pixel with white, preserving the unused high
// byte of each pixel word.
func (fb *Framebuffer) invert() {
	for y := uint32(0); y < fb.height; y++ {
		offset, _ := fb.pixOffset(0, y)
		for end := offset + fb.width; offset < end; offset++ {
			fb.pix[offset] ^= ColorWhite
		}
	}
}
