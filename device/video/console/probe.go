package console

import (
	"github.com/fengjixuchui/Simple-Kernel-sub001/device"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/hal/uefi"
)

// getGraphicsModesFn is overridden by tests to inject framebuffer
// descriptors without a firmware hand-off.
var getGraphicsModesFn = uefi.GraphicsModes

// probeForFramebufferConsole checks the firmware hand-off for a usable
// linear framebuffer and returns a console driver for the first one found.
func probeForFramebufferConsole() device.Driver {
	modes := getGraphicsModesFn()
	if len(modes) == 0 {
		return nil
	}

	mode := modes[0]
	fb, err := NewFramebufferAt(
		mode.FrameBufferBase,
		mode.HorizontalResolution,
		mode.VerticalResolution,
		mode.PixelsPerScanLine,
	)
	if err != nil {
		return nil
	}

	cons, err := New(fb, nil)
	if err != nil {
		return nil
	}

	return cons
}

func init() {
	device.RegisterProbe(probeForFramebufferConsole)
}
