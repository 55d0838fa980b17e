// Package hal discovers the hardware devices the kernel can drive and wires
// the first usable console up as the kfmt output sink.
package hal

import (
	"bytes"

	"github.com/fengjixuchui/Simple-Kernel-sub001/device"
	"github.com/fengjixuchui/Simple-Kernel-sub001/device/video/console"
	"github.com/fengjixuchui/Simple-Kernel-sub001/kernel/kfmt"
)

// managedDevices contains the devices discovered by the HAL.
type managedDevices struct {
	activeConsole *console.Console

	// activeDrivers tracks all initialized device drivers.
	activeDrivers []device.Driver
}

var (
	devices managedDevices
	strBuf  bytes.Buffer
)

// ActiveConsole returns the console selected during hardware detection, or
// nil when no framebuffer was available.
func ActiveConsole() *console.Console {
	return devices.activeConsole
}

// DetectHardware invokes the registered probe functions and initializes the
// returned drivers. The first console driver that initializes successfully
// becomes the active console and replaces the early boot ring buffer as the
// kfmt output sink.
func DetectHardware() {
	var w = kfmt.PrefixWriter{Sink: kfmt.GetOutputSink()}

	for _, probeFn := range device.Probes() {
		drv := probeFn()
		if drv == nil {
			continue
		}

		strBuf.Reset()
		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&strBuf, "[hal] %s(%d.%d.%d): ", drv.DriverName(), major, minor, patch)
		w.Prefix = strBuf.Bytes()

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Error())
			continue
		}

		kfmt.Fprintf(&w, "initialized\n")
		onDriverInit(drv)
		devices.activeDrivers = append(devices.activeDrivers, drv)
	}
}

// onDriverInit is invoked whenever a piece of hardware is detected and
// successfully initialized.
func onDriverInit(drv device.Driver) {
	cons, isConsole := drv.(*console.Console)
	if !isConsole || devices.activeConsole != nil {
		return
	}

	devices.activeConsole = cons
	cons.Reset()
	kfmt.SetOutputSink(cons)
}
