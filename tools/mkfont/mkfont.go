package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/parser"
	"go/printer"
	"go/token"
	"image"
	"os"

	_ "image/gif"
	_ "image/png"
)

// Glyph strips are laid out as a 16x16 grid covering codes 0x00-0xff, code
// order left to right, top to bottom.
const gridCols, gridRows = 16, 16

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[mkfont] error: %s\n", err.Error())
	os.Exit(1)
}

// glyphBit reports whether the strip pixel at (x,y) is a set font pixel. Any
// pixel darker than 50% gray counts as background.
func glyphBit(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return (r+g+b)/3 >= 0x8000
}

func genFontFile(img image.Image, fontVar string, recW, recH, priority uint) (string, error) {
	bounds := img.Bounds()
	if bounds.Size().X%gridCols != 0 || bounds.Size().Y%gridRows != 0 {
		return "", fmt.Errorf("image dimensions %dx%d are not a multiple of the %dx%d glyph grid",
			bounds.Size().X, bounds.Size().Y, gridCols, gridRows)
	}

	var (
		buf         bytes.Buffer
		glyphW      = bounds.Size().X / gridCols
		glyphH      = bounds.Size().Y / gridRows
		bytesPerRow = (glyphW + 7) / 8
		fontVarName = fmt.Sprintf("%s%dx%d", fontVar, glyphW, glyphH)
	)

	fmt.Fprintf(&buf, `
package font

// Code generated by tools/mkfont. DO NOT EDIT.

var %s = Font{
Name: %q,
GlyphWidth: %d,
GlyphHeight: %d,
BytesPerRow: %d,
RecommendedWidth: %d,
RecommendedHeight: %d,
Priority: %d,
Data: []byte{
`, fontVarName, fontVarName, glyphW, glyphH, bytesPerRow, recW, recH, priority)

	for code := 0; code < gridCols*gridRows; code++ {
		baseX := (code % gridCols) * glyphW
		baseY := (code / gridCols) * glyphH

		for row := 0; row < glyphH; row++ {
			for rowByte := 0; rowByte < bytesPerRow; rowByte++ {
				var packed byte
				for bit := 0; bit < 8; bit++ {
					x := rowByte*8 + bit
					if x < glyphW && glyphBit(img, baseX+x, baseY+row) {
						packed |= 1 << (7 - bit)
					}
				}
				fmt.Fprintf(&buf, "0x%02x, ", packed)
			}
		}
		fmt.Fprintf(&buf, "// %#02x\n", code)
	}

	fmt.Fprintf(&buf, "},\n}\n")
	fmt.Fprintf(&buf, "func init(){\navailableFonts = append(availableFonts, &%s)\n}\n", fontVarName)

	return buf.String(), nil
}

func runTool() error {
	fontVar := flag.String("var-name", "font", "the name of the variable containing the font data")
	recW := flag.Uint("recommended-width", 640, "the recommended console width for this font")
	recH := flag.Uint("recommended-height", 480, "the recommended console height for this font")
	priority := flag.Uint("priority", 0, "the font selection priority (lower is better)")
	output := flag.String("out", "-", "a file to write the generated font or - to output to STDOUT")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "mkfont: convert a 16x16 glyph strip image to a console bitmap font\n\n")
		fmt.Fprint(os.Stderr, "Usage: mkfont [options] image\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		exit(errors.New("missing image file argument"))
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	fontData, err := genFontFile(img, *fontVar, *recW, *recH, *priority)
	if err != nil {
		return err
	}

	// Pretty-print generated file using go/printer
	fSet := token.NewFileSet()
	astFile, err := parser.ParseFile(fSet, "", fontData, parser.ParseComments)
	if err != nil {
		return err
	}

	switch *output {
	case "-":
		printer.Fprint(os.Stdout, fSet, astFile)
	default:
		fOut, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer fOut.Close()

		printer.Fprint(fOut, fSet, astFile)
	}

	return nil
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}
