package console

import (
	"io"

	"github.com/fengjixuchui/Simple-Kernel-sub001/device/video/console/font"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/errors"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/kfmt"
)

const (
	tabStopGlyphs     = 8
	vtabLineFeeds     = 6
	defaultForeground = ColorLightGray
	defaultHighlight  = ColorTransparent
	defaultBackground = ColorBlack
)

// Console tracks the cursor and style state for character output on a
// framebuffer. The cursor column is measured in glyph cells while the cursor
// row is a pixel Y coordinate; mixing the units keeps glyph draws and line
// feeds free of per-character multiplications.
//
// Console implements io.Writer and io.ByteWriter so it can be attached
// directly as the kfmt output sink.
type Console struct {
	fb     *Framebuffer
	font   *font.Font
	col    uint32
	rowY   uint32
	fg     uint32
	hl     uint32
	bg     uint32
	scale  uint32
	policy ScrollPolicy
}

// New returns a console bound to fb. When f is nil the best fitting font for
// the framebuffer resolution is selected automatically.
func New(fb *Framebuffer, f *font.Font) (*Console, error) {
	if f == nil {
		f = font.BestFit(fb.Width(), fb.Height())
	}
	if f == nil {
		return nil, errors.ErrNoFont
	}

	return &Console{
		fb:     fb,
		font:   f,
		fg:     defaultForeground,
		hl:     defaultHighlight,
		bg:     defaultBackground,
		scale:  1,
		policy: ScrollWrapTop,
	}, nil
}

// Reset clears the framebuffer to the background color and homes the cursor.
func (c *Console) Reset() {
	c.fb.Clear(c.bg)
	c.col, c.rowY = 0, 0
}

// ResetWithColor changes the background color and then performs a Reset.
func (c *Console) ResetWithColor(bg uint32) {
	c.bg = bg
	c.Reset()
}

// SetColors updates the foreground and highlight colors used for subsequent
// glyph draws. Passing ColorTransparent as the highlight makes the rasterizer
// preserve the pixels behind each glyph.
func (c *Console) SetColors(fg, hl uint32) {
	c.fg = fg
	c.hl = hl
}

// SetScale changes the integer glyph magnification. The call fails with
// ErrInvalidScale when scale is zero or a single scaled glyph no longer fits
// the framebuffer.
func (c *Console) SetScale(scale uint32) error {
	if scale == 0 || c.font.GlyphWidth*scale > c.fb.Width() || c.font.GlyphHeight*scale > c.fb.Height() {
		return errors.ErrInvalidScale
	}

	c.scale = scale
	return nil
}

// Scale returns the active glyph magnification.
func (c *Console) Scale() uint32 { return c.scale }

// SetScrollPolicy selects the behavior when output advances past the bottom
// of the framebuffer.
func (c *Console) SetScrollPolicy(policy ScrollPolicy) {
	c.policy = policy
}

// Font returns the font attached to the console.
func (c *Console) Font() *font.Font { return c.font }

// Dimensions returns the console dimensions in the requested units. The
// character dimensions depend on the attached font and the current scale.
func (c *Console) Dimensions(dim Dimension) (uint32, uint32) {
	switch dim {
	case Characters:
		return c.fb.Width() / (c.font.GlyphWidth * c.scale),
			c.fb.Height() / (c.font.GlyphHeight * c.scale)
	default:
		return c.fb.Width(), c.fb.Height()
	}
}

// Write implements io.Writer by feeding each byte through the console state
// machine. It always consumes the full input.
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		c.WriteByte(b)
	}
	return len(p), nil
}

// WriteByte implements io.ByteWriter. Printable characters render a glyph
// and advance the cursor; the supported control characters adjust the cursor
// or the framebuffer as follows:
//
//	BS  0x08  move one cell left unless at column 0; no pixels change
//	HT  0x09  render eight space glyphs through the printable path
//	LF  0x0a  advance one glyph row; the column is preserved
//	VT  0x0b  advance six glyph rows; the column is preserved
//	FF  0x0c  clear to the background color and home the cursor
//	CR  0x0d  return to column 0
//	BEL 0x07  flash the framebuffer; cursor state is unchanged
//	NEL 0x85  carriage return plus line feed
//
// DEL and ESC are consumed without effect. Every other byte is looked up in
// the font table, so codes without a dedicated glyph render the font's
// replacement pattern rather than vanishing.
func (c *Console) WriteByte(b byte) error {
	switch b {
	case '\r':
		c.col = 0
	case '\n':
		c.lineFeed()
	case 0x85:
		c.col = 0
		c.lineFeed()
	case '\t':
		for i := 0; i < tabStopGlyphs; i++ {
			c.renderGlyph(' ')
		}
	case '\v':
		for i := 0; i < vtabLineFeeds; i++ {
			c.lineFeed()
		}
	case '\b':
		if c.col > 0 {
			c.col--
		}
	case '\f':
		c.Reset()
	case 0x07:
		c.fb.Flash()
	case 0x7f, 0x1b:
		// no-op
	default:
		c.renderGlyph(b)
	}
	return nil
}

// renderGlyph draws one glyph at the cursor position and advances the
// cursor, wrapping to the next row when the following cell would overflow
// the framebuffer width.
func (c *Console) renderGlyph(b byte) {
	c.fb.DrawGlyph(c.font, b, 0, c.rowY, c.col, c.scale, c.fg, c.hl)
	c.col++

	if (c.col+1)*c.font.GlyphWidth*c.scale > c.fb.Width() {
		c.col = 0
		c.lineFeed()
	}
}

// lineFeed advances the cursor row by one scaled glyph height. When the next
// row would overflow the framebuffer the cursor wraps back to the top;
// ScrollShiftPixels falls back to the same behavior until pixel scrolling is
// implemented.
func (c *Console) lineFeed() {
	c.rowY += c.font.GlyphHeight * c.scale

	if c.rowY+c.font.GlyphHeight*c.scale > c.fb.Height() {
		c.rowY = 0
	}
}

// DrawCharAt renders a single glyph at an absolute pixel position without
// touching the cursor state.
func (c *Console) DrawCharAt(ch byte, x, y uint32) BoundsFault {
	return c.fb.DrawGlyph(c.font, ch, x, y, 0, c.scale, c.fg, c.hl)
}

// DrawStringAt renders s left to right starting at an absolute pixel
// position, without touching the cursor state. Each character occupies the
// next glyph cell relative to (x, y). Rendering continues past a bounds
// fault; the first fault encountered is returned.
func (c *Console) DrawStringAt(s string, x, y uint32) BoundsFault {
	fault := FaultNone
	for i := 0; i < len(s); i++ {
		if f := c.fb.DrawGlyph(c.font, s[i], x, y, uint32(i), c.scale, c.fg, c.hl); f != FaultNone && fault == FaultNone {
			fault = f
		}
	}
	return fault
}

// DrawBitmapAt renders an arbitrary packed monochrome bitmap at an absolute
// pixel position using the console's current colors and scale.
func (c *Console) DrawBitmapAt(data []byte, heightPx, widthBits, x, y uint32) BoundsFault {
	return c.fb.DrawBitmap(data, heightPx, widthBits, x, y, 0, c.scale, c.fg, c.hl)
}

// DriverName implements device.Driver.
func (c *Console) DriverName() string {
	return "fb_console"
}

// DriverVersion implements device.Driver.
func (c *Console) DriverVersion() (major, minor, patch uint16) {
	return 0, 0, 1
}

// DriverInit implements device.Driver.
func (c *Console) DriverInit(w io.Writer) error {
	cols, rows := c.Dimensions(Characters)
	kfmt.Fprintf(w, "framebuffer console: %dx%d (%dx%d chars), font %s\n",
		c.fb.Width(), c.fb.Height(), cols, rows, c.font.Name)
	return nil
}
