package console

import (
	"testing"
	"unsafe"

	"github.com/fengjixuchui/Simple-Kernel-sub001/device/video/console/font"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/errors"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/hal/uefi"
)

// newTestConsole returns a console attached to a RAM framebuffer. The
// dimensions are in pixels; vincent8x8 yields one glyph cell per 8x8 block.
func newTestConsole(t *testing.T, width, height uint32) (*Console, []uint32) {
	t.Helper()

	fb, pix := newTestFramebuffer(t, width, height, width)
	cons, err := New(fb, font.FindByName("vincent8x8"))
	if err != nil {
		t.Fatal(err)
	}
	return cons, pix
}

func TestConsoleDefaults(t *testing.T) {
	cons, _ := newTestConsole(t, 64, 32)

	if cons.fg != defaultForeground || cons.hl != defaultHighlight || cons.bg != defaultBackground {
		t.Error("unexpected default colors")
	}
	if cons.scale != 1 || cons.policy != ScrollWrapTop {
		t.Error("unexpected default scale or scroll policy")
	}
	if cons.col != 0 || cons.rowY != 0 {
		t.Error("expected the cursor to start at the origin")
	}
}

func TestConsoleColumnWrap(t *testing.T) {
	// 4 glyph columns.
	cons, _ := newTestConsole(t, 32, 32)

	for i := 0; i < 3; i++ {
		cons.WriteByte('x')
	}
	if cons.col != 3 || cons.rowY != 0 {
		t.Fatalf("expected cursor at col 3, rowY 0; got col %d, rowY %d", cons.col, cons.rowY)
	}

	// The fourth glyph fills the last cell and wraps exactly once.
	cons.WriteByte('x')
	if cons.col != 0 || cons.rowY != 8 {
		t.Fatalf("expected cursor at col 0, rowY 8; got col %d, rowY %d", cons.col, cons.rowY)
	}

	cons.WriteByte('x')
	if cons.col != 1 || cons.rowY != 8 {
		t.Fatalf("expected cursor at col 1, rowY 8; got col %d, rowY %d", cons.col, cons.rowY)
	}
}

func TestConsoleRowWrapToTop(t *testing.T) {
	// 3 glyph rows.
	cons, _ := newTestConsole(t, 32, 24)

	cons.WriteByte('\n')
	cons.WriteByte('\n')
	if cons.rowY != 16 {
		t.Fatalf("expected rowY 16; got %d", cons.rowY)
	}

	cons.WriteByte('\n')
	if cons.rowY != 0 {
		t.Fatalf("expected the cursor row to wrap back to the top; got rowY %d", cons.rowY)
	}
}

func TestConsoleControlCharacters(t *testing.T) {
	specs := []struct {
		descr   string
		input   string
		expCol  uint32
		expRowY uint32
	}{
		{"line feed preserves the column", "ab\n", 2, 8},
		{"carriage return homes the column", "abc\r", 0, 0},
		{"next line is CR plus LF", "ab\x85", 0, 8},
		{"vertical tab feeds six lines", "a\v", 1, 48},
		{"backspace steps one cell left", "ab\b", 1, 0},
		{"backspace at column 0 stays put", "\b", 0, 0},
		{"form feed homes the cursor", "abc\n\f", 0, 0},
		{"delete is consumed", "ab\x7f", 2, 0},
		{"escape is consumed", "ab\x1b", 2, 0},
	}

	for specIndex, spec := range specs {
		// 8 glyph columns, 8 glyph rows.
		cons, _ := newTestConsole(t, 64, 64)

		cons.Write([]byte(spec.input))
		if cons.col != spec.expCol || cons.rowY != spec.expRowY {
			t.Errorf("[spec %d] %s: expected cursor at col %d, rowY %d; got col %d, rowY %d",
				specIndex, spec.descr, spec.expCol, spec.expRowY, cons.col, cons.rowY)
		}
	}
}

func TestConsoleTabRendersSpaces(t *testing.T) {
	// 16 glyph columns so a full tab fits on one row.
	cons, pix := newTestConsole(t, 128, 16)
	cons.SetColors(ColorWhite, ColorBlue)

	cons.WriteByte('\t')
	if cons.col != 8 || cons.rowY != 0 {
		t.Fatalf("expected cursor at col 8, rowY 0; got col %d, rowY %d", cons.col, cons.rowY)
	}

	// Tab stops go through the printable path, so the skipped cells are
	// painted with the highlight color.
	for x := uint32(0); x < 64; x++ {
		if got := pix[x]; got != ColorBlue {
			t.Fatalf("(%d,0): expected tab cells to carry the highlight color; got %#x", x, got)
		}
	}
	if got := pix[64]; got != 0 {
		t.Errorf("(64,0): expected the cell after the tab stop to be untouched; got %#x", got)
	}
}

func TestConsoleBackspaceIsNonDestructive(t *testing.T) {
	cons, pix := newTestConsole(t, 64, 16)
	cons.SetColors(ColorWhite, ColorBlack)

	cons.WriteByte('a')
	before := make([]uint32, len(pix))
	copy(before, pix)

	cons.WriteByte('\b')
	for i := range pix {
		if pix[i] != before[i] {
			t.Fatalf("expected backspace to leave pixel %d unchanged", i)
		}
	}
}

func TestConsoleFormFeedClearsToBackground(t *testing.T) {
	cons, pix := newTestConsole(t, 32, 16)
	cons.ResetWithColor(ColorBlue)
	cons.SetColors(ColorWhite, ColorCyan)

	cons.Write([]byte("abc"))
	cons.WriteByte('\f')

	if cons.col != 0 || cons.rowY != 0 {
		t.Fatalf("expected form feed to home the cursor; got col %d, rowY %d", cons.col, cons.rowY)
	}
	for i, v := range pix {
		if v != ColorBlue {
			t.Fatalf("expected pixel %d to carry the background color; got %#x", i, v)
		}
	}
}

func TestConsoleBellPreservesContents(t *testing.T) {
	origSpinCycles := flashSpinCycles
	flashSpinCycles = 8
	defer func() { flashSpinCycles = origSpinCycles }()

	cons, pix := newTestConsole(t, 32, 16)
	cons.Write([]byte("hi"))
	before := make([]uint32, len(pix))
	copy(before, pix)

	cons.WriteByte(0x07)

	if cons.col != 2 || cons.rowY != 0 {
		t.Fatalf("expected the bell to leave the cursor alone; got col %d, rowY %d", cons.col, cons.rowY)
	}
	for i := range pix {
		if pix[i] != before[i] {
			t.Fatalf("expected the bell to restore pixel %d", i)
		}
	}
}

func TestConsoleSetScale(t *testing.T) {
	cons, _ := newTestConsole(t, 64, 32)

	if err := cons.SetScale(0); err != errors.ErrInvalidScale {
		t.Errorf("expected scale 0 to return ErrInvalidScale; got %v", err)
	}

	// 8x8 glyphs at scale 5 no longer fit a 32 pixel tall framebuffer.
	if err := cons.SetScale(5); err != errors.ErrInvalidScale {
		t.Errorf("expected an oversized scale to return ErrInvalidScale; got %v", err)
	}

	if err := cons.SetScale(2); err != nil {
		t.Fatalf("expected scale 2 to be accepted; got %v", err)
	}
	if w, h := cons.Dimensions(Characters); w != 4 || h != 2 {
		t.Errorf("expected a 4x2 character grid at scale 2; got %dx%d", w, h)
	}
}

func TestConsoleDimensions(t *testing.T) {
	cons, _ := newTestConsole(t, 100, 50)

	if w, h := cons.Dimensions(Pixels); w != 100 || h != 50 {
		t.Errorf("expected 100x50 pixels; got %dx%d", w, h)
	}
	// Partial cells at the edges do not count.
	if w, h := cons.Dimensions(Characters); w != 12 || h != 6 {
		t.Errorf("expected a 12x6 character grid; got %dx%d", w, h)
	}
}

func TestConsoleWriteReportsFullConsumption(t *testing.T) {
	cons, _ := newTestConsole(t, 64, 32)

	msg := []byte("hello\r\nworld")
	n, err := cons.Write(msg)
	if n != len(msg) || err != nil {
		t.Fatalf("expected (%d, nil); got (%d, %v)", len(msg), n, err)
	}
}

func TestConsoleDrawStringAt(t *testing.T) {
	cons, pix := newTestConsole(t, 64, 16)
	cons.SetColors(ColorWhite, ColorBlack)

	if fault := cons.DrawStringAt("ab", 8, 0); fault != FaultNone {
		t.Fatalf("expected FaultNone; got %d", fault)
	}

	f := cons.Font()
	for charIndex, ch := range []byte("ab") {
		glyph := f.Glyph(ch)
		baseX := 8 + uint32(charIndex)*f.GlyphWidth
		for y := uint32(0); y < f.GlyphHeight; y++ {
			for x := uint32(0); x < f.GlyphWidth; x++ {
				exp := uint32(ColorBlack)
				if glyph[y]&(1<<(7-x)) != 0 {
					exp = ColorWhite
				}
				if got := pix[y*64+baseX+x]; got != exp {
					t.Errorf("glyph %d (%d,%d): expected %#x; got %#x", charIndex, x, y, exp, got)
				}
			}
		}
	}

	// Cursor state is not affected by absolute draws.
	if cons.col != 0 || cons.rowY != 0 {
		t.Errorf("expected the cursor to stay at the origin; got col %d, rowY %d", cons.col, cons.rowY)
	}
}

func TestProbeForFramebufferConsole(t *testing.T) {
	defer func() { getGraphicsModesFn = uefi.GraphicsModes }()

	getGraphicsModesFn = func() []uefi.GraphicsMode { return nil }
	if drv := probeForFramebufferConsole(); drv != nil {
		t.Error("expected the probe to fail without a graphics mode")
	}

	pix := make([]uint32, 672*480)
	getGraphicsModesFn = func() []uefi.GraphicsMode {
		return []uefi.GraphicsMode{{
			FrameBufferBase:      uintptr(unsafe.Pointer(&pix[0])),
			FrameBufferSize:      uint64(len(pix) * 4),
			HorizontalResolution: 640,
			VerticalResolution:   480,
			PixelsPerScanLine:    672,
		}}
	}

	drv := probeForFramebufferConsole()
	if drv == nil {
		t.Fatal("expected the probe to return a console driver")
	}
	if got := drv.DriverName(); got != "fb_console" {
		t.Errorf("expected driver name fb_console; got %s", got)
	}

	cons := drv.(*Console)
	if w, h := cons.Dimensions(Pixels); w != 640 || h != 480 {
		t.Errorf("expected a 640x480 console; got %dx%d", w, h)
	}
	if cons.Font() == nil {
		t.Error("expected the probe to auto-select a font")
	}
}
