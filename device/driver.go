package device

import "io"

// Driver is an interface implemented by all drivers.
type Driver interface {
	// DriverName returns the name of the driver.
	DriverName() string

	// DriverVersion returns the driver version.
	DriverVersion() (major uint16, minor uint16, patch uint16)

	// DriverInit initializes the device driver. If the driver init code
	// needs to log some output, it can use the supplied io.Writer in
	// conjunction with a call to kfmt.Fprintf.
	DriverInit(io.Writer) error
}

// ProbeFn is a function that scans for the presence of a particular piece of
// hardware and returns a driver for it.
type ProbeFn func() Driver

var probeFuncs []ProbeFn

// RegisterProbe adds a probe function to the list scanned by the HAL during
// hardware detection. It is meant to be called from package init functions.
func RegisterProbe(fn ProbeFn) {
	probeFuncs = append(probeFuncs, fn)
}

// Probes returns the list of registered probe functions.
func Probes() []ProbeFn {
	return probeFuncs
}
