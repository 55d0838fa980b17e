// Package uefi carries the firmware hand-off state that survives
// ExitBootServices. The bootloader records the graphics output protocol mode
// list before jumping to the kernel; everything else about UEFI is gone by
// the time kernel code runs.
package uefi

// GraphicsMode describes one linear framebuffer provided by the firmware's
// graphics output protocol. PixelsPerScanLine is the stride in pixels and
// may exceed HorizontalResolution due to hardware padding.
type GraphicsMode struct {
	FrameBufferBase      uintptr
	FrameBufferSize      uint64
	HorizontalResolution uint32
	VerticalResolution   uint32
	PixelsPerScanLine    uint32
}

var graphicsModes []GraphicsMode

// SetGraphicsModes records the framebuffer list captured by the bootloader.
// It must be called exactly once, before hardware detection runs.
func SetGraphicsModes(modes []GraphicsMode) {
	graphicsModes = modes
}

// GraphicsModes returns the framebuffer list captured by the bootloader. The
// slice is empty when the firmware provided no usable graphics output.
func GraphicsModes() []GraphicsMode {
	return graphicsModes
}
