// Package console implements the kernel's diagnostic framebuffer console:
// a cursor/style state machine fed one character at a time (usually by
// kfmt), a glyph rasterizer, and the framebuffer fill/flood primitives they
// share.
//
// The console runs before interrupts, the scheduler or the Go allocator are
// available. Nothing in this package allocates after initialization, blocks,
// or takes locks; single-caller access is a documented hard precondition.
package console

// Colors are 32-bit BGRX pixel values: blue in bits 0-7, green in bits 8-15,
// red in bits 16-23. Bits 24-31 are unused by the display hardware, which
// leaves room for the transparency sentinel.
const (
	ColorBlack     = 0x00000000
	ColorBlue      = 0x000000ff
	ColorGreen     = 0x0000ff00
	ColorCyan      = 0x0000ffff
	ColorRed       = 0x00ff0000
	ColorMagenta   = 0x00ff00ff
	ColorOrange    = 0x00ff8000
	ColorYellow    = 0x00ffff00
	ColorLightGray = 0x00bfbfbf
	ColorWhite     = 0x00ffffff

	// ColorTransparent is the reserved highlight/background sentinel:
	// the rasterizer leaves background pixels untouched when the
	// highlight color equals this value.
	ColorTransparent = 0xff000000
)

// Diagnostic flood colors. A rasterizer bounds failure floods the whole
// framebuffer with the color of its failure class and execution continues;
// this console is frequently the only diagnostic surface available, so
// nothing here may halt.
const (
	floodOversizedColor uint32 = ColorRed
	floodOriginColor    uint32 = ColorMagenta
	floodEdgeColor      uint32 = ColorOrange
)

// ScrollPolicy selects what happens when output advances past the bottom of
// the visible framebuffer.
type ScrollPolicy uint8

const (
	// ScrollWrapTop resets the cursor row to the top of the framebuffer.
	ScrollWrapTop ScrollPolicy = iota

	// ScrollShiftPixels shifts the framebuffer contents up by one glyph
	// row. This policy value is accepted but not yet implemented; the
	// console currently falls back to ScrollWrapTop behavior.
	ScrollShiftPixels
)

// Dimension defines the types of dimensions that can be queried off a
// console.
type Dimension uint8

const (
	// Characters describes the console size in glyph cells given the
	// attached font and the current scale.
	Characters Dimension = iota

	// Pixels describes the console size in framebuffer pixels.
	Pixels
)
