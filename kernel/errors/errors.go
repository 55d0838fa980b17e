package errors

var (
	// ErrNoGraphicsMode is returned when the firmware hand-off did not
	// provide any usable framebuffer.
	ErrNoGraphicsMode = KernelError("no graphics mode available")

	// ErrBadFramebufferGeometry is returned when a framebuffer descriptor
	// is internally inconsistent (e.g. stride smaller than the visible
	// width or a pixel region shorter than stride*height).
	ErrBadFramebufferGeometry = KernelError("invalid framebuffer geometry")

	// ErrInvalidScale is returned when a requested glyph scale is zero or
	// too large for a single glyph to fit the active framebuffer.
	ErrInvalidScale = KernelError("invalid glyph scale")

	// ErrNoFont is returned when a console operation requires a font but
	// none has been attached.
	ErrNoFont = KernelError("no font attached to console")
)

// KernelError is a trivial implementation of a kernel error message that
// doesn't require a memory allocation. It is used as an alternative to
// errors.New which cannot be called before the Go allocator is available.
type KernelError string

// Error implements the error interface.
func (err KernelError) Error() string {
	return string(err)
}
