// Command fbdemo hosts the kernel console on a desktop window. It substitutes
// a RAM framebuffer for mapped video memory, runs a script through the same
// kfmt and console code the kernel boots with and presents the pixel contents
// via ebiten. Useful for eyeballing font, wrap and flood behavior without a
// VM round trip.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/fengjixuchui/Simple-Kernel-sub001/device/video/console"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/kfmt"
)

const (
	fbWidth  = 640
	fbHeight = 480
	fbStride = 672
)

type demo struct {
	fb *console.Framebuffer

	// rgba is the per-frame BGRX to RGBA conversion buffer.
	rgba []byte
}

func (d *demo) Update() error { return nil }

func (d *demo) Draw(screen *ebiten.Image) {
	pix := d.fb.Pix()
	stride := int(d.fb.Stride())

	for y := 0; y < fbHeight; y++ {
		for x := 0; x < fbWidth; x++ {
			bgrx := pix[y*stride+x]
			off := (y*fbWidth + x) * 4
			d.rgba[off] = byte(bgrx >> 16)
			d.rgba[off+1] = byte(bgrx >> 8)
			d.rgba[off+2] = byte(bgrx)
			d.rgba[off+3] = 0xff
		}
	}

	screen.WritePixels(d.rgba)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return fbWidth, fbHeight
}

// runScript drives the console through the interesting parts of the
// formatting and control character repertoire.
func runScript(cons *console.Console) {
	cons.ResetWithColor(console.ColorBlack)
	cons.SetColors(console.ColorLightGray, console.ColorTransparent)

	kfmt.Fprintf(cons, "fbdemo: %dx%d console, font %s\r\n\n", fbWidth, fbHeight, cons.Font().Name)

	kfmt.Fprintf(cons, "ints:    %d %+d %05d %-5d|\r\n", 42, 42, -42, 7)
	kfmt.Fprintf(cons, "bases:   %#x %#o dec=%r\r\n", 48879, 8, 255)
	kfmt.Fprintf(cons, "strings: %10s %-10s| %c\r\n", "right", "left", 'Z')
	kfmt.Fprintf(cons, "flags:   %b\r\n", uint8(0x55), "\x08\x01BIT0\x03BIT2\x05BIT4\x07BIT6")
	kfmt.Fprintf(cons, "dump:    %4D\r\n", []byte{0xde, 0xad, 0xbe, 0xef}, ":")

	var written int
	kfmt.Fprintf(cons, "this line is %n measured\r\n", &written)
	kfmt.Fprintf(cons, "count:   %d bytes before the verb\r\n", written)

	cons.SetColors(console.ColorYellow, console.ColorBlue)
	kfmt.Fprintf(cons, "\ttabbed, highlighted\r\n")
	cons.SetColors(console.ColorWhite, console.ColorTransparent)

	cons.DrawStringAt("absolute draw @ (400,440)", 400, 440)
}

func main() {
	fb, err := console.NewFramebuffer(fbWidth, fbHeight, fbStride, make([]uint32, fbStride*fbHeight))
	if err != nil {
		log.Fatal(err)
	}

	cons, err := console.New(fb, nil)
	if err != nil {
		log.Fatal(err)
	}

	runScript(cons)

	ebiten.SetWindowSize(fbWidth, fbHeight)
	ebiten.SetWindowTitle("kernel console demo")
	if err := ebiten.RunGame(&demo{fb: fb, rgba: make([]byte, fbWidth*fbHeight*4)}); err != nil {
		log.Fatal(err)
	}
}
