// Package kfmt provides a printf-compatible formatting engine that can be
// safely used before the Go runtime has been properly initialized. Nothing in
// this package allocates memory on an output path.
//
// The conversion set follows the BSD kernel printf family rather than the Go
// fmt package:
//
// Integers:
//	%d, %i	signed decimal
//	%u	unsigned decimal
//	%o	unsigned octal
//	%x, %X	unsigned hex with lower/upper-case digits
//	%p	pointer; implies the '#' flag when no width is given
//	%r	integer using the engine's default radix (see Snrprintf)
//	%b	bitfield decoder; consumes the value followed by a control
//		string whose first byte selects the output base and whose
//		remainder is bit-number/name pairs. Set bits print their
//		names between '<' and '>' separated by commas.
//
// Other:
//	%s	string or []byte; a nil []byte renders as "(null)"
//	%c	single character
//	%D	hex dump of a []byte followed by a separator string; the
//		width field selects the byte count (default 16)
//	%n	store the running output count through a pointer argument
//	%%	literal percent sign
//
// Flags: '-' left-justify, '0' zero-pad, '+' force sign, '#' alternate form.
// Width and precision may be given literally or as '*' arguments; a negative
// '*' width flips justification and its magnitude is used. The length
// modifiers h/hh, l/ll, j, z and t truncate the fetched argument to the
// matching C width.
//
// An unrecognized conversion letter emits the raw "%...letter" text and
// disables all further '%' interpretation for the remainder of the call.
// This mirrors the legacy kernel printf behavior of refusing to fetch
// arguments once the format and argument streams may be out of sync.
package kfmt

import (
	"io"
	"unsafe"
)

// maxNumBuf is the size of the scratch buffer used for number conversions.
// It fits a 64-bit value in base 2 with room to spare.
const maxNumBuf = 80

// maxPad bounds width and precision values so that malformed or hostile
// format strings cannot produce unbounded padding loops.
const maxPad = 1 << 16

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
const upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	nullValue       = []byte("(null)")
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errExtraArg     = []byte("%!(EXTRA)")

	// singleByte is used as a shared buffer for passing single characters
	// to doWrite.
	singleByte = []byte(" ")

	// earlyPrintBuffer is a ring buffer that stores Printf output before
	// a console has been attached via SetOutputSink.
	earlyPrintBuffer ringBuffer

	// outputSink is an io.Writer where Printf will send its output. If
	// set to nil, the output is redirected to the earlyPrintBuffer.
	outputSink io.Writer
)

// SetOutputSink sets the default target for calls to Printf to w and copies
// any data accumulated in the earlyPrintBuffer to it.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil && w != io.Writer(&earlyPrintBuffer) {
		io.Copy(w, &earlyPrintBuffer)
	}
}

// GetOutputSink returns the current target for calls to Printf. Before a
// console has been attached this is the early boot ring buffer.
func GetOutputSink() io.Writer {
	if outputSink == nil {
		return &earlyPrintBuffer
	}
	return outputSink
}

// Printf formats its arguments and writes them to the active output sink,
// buffering into the early ring buffer when no sink is attached yet. It
// returns the number of characters produced.
func Printf(format string, args ...interface{}) int {
	return Fprintf(outputSink, format, args...)
}

// Fprintf behaves exactly like Printf but it writes the formatted output to
// the specified io.Writer. A nil writer targets the early ring buffer.
func Fprintf(w io.Writer, format string, args ...interface{}) int {
	s := writerSink{w: w}
	var f formatter
	f.run(&s, 10, format, args)
	return f.count
}

// sink consumes the engine's output one character at a time. The character
// sink of the active console, the bounded buffer sinks and io.Writer
// adapters all sit behind this interface.
type sink interface {
	putc(b byte)
}

// writerSink adapts an io.Writer into a sink without allocating.
type writerSink struct {
	w io.Writer
}

func (s *writerSink) putc(b byte) {
	singleByte[0] = b
	doWrite(s.w, singleByte)
}

// convSpec holds the transient parse state for one conversion. It only lives
// for the duration of a single conversion and is never persisted.
type convSpec struct {
	ladjust  bool
	zeropad  bool
	plus     bool
	sharp    bool
	dot      bool
	width    int
	prec     int
	lmod     byte // 0, 'h', 'H' (hh), 'l', 'L' (ll), 'j', 'z', 't'
	upper    bool
}

// formatter drives a single formatting call and tracks the total number of
// characters handed to the sink.
type formatter struct {
	count int
}

func (f *formatter) putc(s sink, b byte) {
	s.putc(b)
	f.count++
}

func (f *formatter) puts(s sink, p []byte) {
	for i := 0; i < len(p); i++ {
		f.putc(s, p[i])
	}
}

// putstr emits a string one byte at a time; converting the string to a byte
// slice would trigger a memory allocation.
func (f *formatter) putstr(s sink, p string) {
	for i := 0; i < len(p); i++ {
		f.putc(s, p[i])
	}
}

func (f *formatter) pad(s sink, ch byte, count int) {
	for ; count > 0; count-- {
		f.putc(s, ch)
	}
}

// run performs a single left-to-right scan over format, emitting literal
// bytes verbatim and expanding conversions from args. radix supplies the
// base used by the %r conversion.
func (f *formatter) run(s sink, radix int, format string, args []interface{}) {
	if radix < 2 || radix > 36 {
		radix = 10
	}

	var (
		argIndex int
		stop     bool
		fmtLen   = len(format)
	)

	for i := 0; i < fmtLen; i++ {
		ch := format[i]
		if ch != '%' || stop {
			f.putc(s, ch)
			continue
		}

		// Scan flags, width, precision and length modifiers until a
		// conversion letter terminates the loop.
		var (
			spec         convSpec
			percentStart = i
			done         bool
		)
		spec.prec = -1

	parseFmt:
		for i++; i < fmtLen; i++ {
			ch = format[i]
			switch ch {
			case '%':
				f.putc(s, '%')
				done = true
				break parseFmt
			case '-':
				spec.ladjust = true
			case '+':
				spec.plus = true
			case '#':
				spec.sharp = true
			case '.':
				spec.dot = true
				spec.prec = 0
			case '*':
				v, ok := fetchInt(argAt(args, &argIndex), 0)
				if !ok {
					v = 0
				}
				if spec.dot {
					spec.prec = clampPad(int(v))
				} else if v < 0 {
					spec.ladjust = !spec.ladjust
					spec.width = clampPad(int(-v))
				} else {
					spec.width = clampPad(int(v))
				}
			case '0':
				if spec.dot {
					spec.prec = clampPad(spec.prec * 10)
				} else if spec.width == 0 {
					spec.zeropad = true
				} else {
					spec.width = clampPad(spec.width * 10)
				}
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				if spec.dot {
					spec.prec = clampPad(spec.prec*10 + int(ch-'0'))
				} else {
					spec.width = clampPad(spec.width*10 + int(ch-'0'))
				}
			case 'h':
				if spec.lmod == 'h' {
					spec.lmod = 'H'
				} else {
					spec.lmod = 'h'
				}
			case 'l':
				if spec.lmod == 'l' {
					spec.lmod = 'L'
				} else {
					spec.lmod = 'l'
				}
			case 'j', 'z', 't':
				spec.lmod = ch
			default:
				stop = f.conversion(s, ch, &spec, radix, format[percentStart:i+1], args, &argIndex)
				done = true
				break parseFmt
			}
		}

		if !done && i >= fmtLen {
			// Reached the end of the format string inside a
			// conversion; emit the partial conversion verbatim.
			f.putstr(s, format[percentStart:])
		}
	}

	// Report arguments that were never consumed.
	if !stop {
		for ; argIndex < len(args); argIndex++ {
			f.puts(s, errExtraArg)
		}
	}
}

// conversion expands a single conversion letter. It returns true when the
// letter was unrecognized and the remainder of the format string must be
// emitted verbatim.
func (f *formatter) conversion(s sink, verb byte, spec *convSpec, radix int, raw string, args []interface{}, argIndex *int) bool {
	switch verb {
	case 'd', 'i':
		arg := argAt(args, argIndex)
		v, ok := fetchInt(arg, spec.lmod)
		if !ok {
			f.fetchError(s, arg)
			return false
		}
		f.number(s, magnitude(v), 10, v < 0, spec)
	case 'u':
		f.unsigned(s, 10, spec, args, argIndex)
	case 'o':
		f.unsigned(s, 8, spec, args, argIndex)
	case 'x':
		f.unsigned(s, 16, spec, args, argIndex)
	case 'X':
		spec.upper = true
		f.unsigned(s, 16, spec, args, argIndex)
	case 'p':
		arg := argAt(args, argIndex)
		v, ok := fetchUint(arg, 0)
		if !ok {
			f.fetchError(s, arg)
			return false
		}
		spec.sharp = spec.width == 0
		f.number(s, v, 16, false, spec)
	case 'r':
		if spec.plus {
			arg := argAt(args, argIndex)
			v, ok := fetchInt(arg, spec.lmod)
			if !ok {
				f.fetchError(s, arg)
				return false
			}
			f.number(s, magnitude(v), uint64(radix), v < 0, spec)
			return false
		}
		f.unsigned(s, uint64(radix), spec, args, argIndex)
	case 'c':
		f.fmtChar(s, argAt(args, argIndex))
	case 's':
		f.fmtString(s, argAt(args, argIndex), spec)
	case 'b':
		f.fmtBitfield(s, spec, args, argIndex)
	case 'D':
		f.fmtHexDump(s, spec, args, argIndex)
	case 'n':
		f.fmtStoreCount(s, argAt(args, argIndex))
	default:
		// Unrecognized conversion: emit the raw "%...letter" text and
		// stop interpreting '%' for the rest of this call since the
		// format and argument streams may no longer match.
		f.putstr(s, raw)
		return true
	}

	return false
}

// unsigned expands one unsigned numeric conversion in the given base.
func (f *formatter) unsigned(s sink, base uint64, spec *convSpec, args []interface{}, argIndex *int) {
	arg := argAt(args, argIndex)
	v, ok := fetchUint(arg, spec.lmod)
	if !ok {
		f.fetchError(s, arg)
		return
	}
	f.number(s, v, base, false, spec)
}

// number emits a numeric conversion. The emission order for a padded
// conversion is: leading spaces (right-justified, space padded), sign,
// alternate-form prefix, zero padding, digits, trailing spaces
// (left-justified). A zero value with the '#' flag omits the prefix.
func (f *formatter) number(out sink, num uint64, base uint64, neg bool, spec *convSpec) {
	var (
		nbuf [maxNumBuf]byte
		n    int
		set  = digits
	)

	if base < 2 || base > 36 {
		base = 10
	}
	if spec.upper {
		set = upperDigits
	}

	// Convert the magnitude least-significant digit first via repeated
	// divide/modulo; the buffer is drained in reverse below.
	for {
		nbuf[n] = set[num%base]
		n++
		num /= base
		if num == 0 {
			break
		}
	}
	zeroValue := n == 1 && nbuf[0] == '0'

	var signCh byte
	if neg {
		signCh = '-'
	} else if spec.plus {
		signCh = '+'
	}

	extra := 0
	if signCh != 0 {
		extra++
	}
	if spec.sharp && !zeroValue {
		switch base {
		case 8:
			extra++
		case 16:
			extra += 2
		}
	}

	dwidth := 0
	if spec.prec > 0 {
		dwidth = spec.prec
	}
	if !spec.ladjust && spec.zeropad {
		dwidth = spec.width - extra
	}

	zeros := dwidth - n
	if zeros < 0 {
		zeros = 0
	}

	pad := spec.width - extra - n - zeros
	if !spec.ladjust {
		f.pad(out, ' ', pad)
	}
	if signCh != 0 {
		f.putc(out, signCh)
	}
	if spec.sharp && !zeroValue {
		switch base {
		case 8:
			f.putc(out, '0')
		case 16:
			f.putc(out, '0')
			f.putc(out, set[33]) // 'x' or 'X'
		}
	}
	f.pad(out, '0', zeros)
	for n--; n >= 0; n-- {
		f.putc(out, nbuf[n])
	}
	if spec.ladjust {
		f.pad(out, ' ', pad)
	}
}

// fmtChar emits a single character argument.
func (f *formatter) fmtChar(s sink, v interface{}) {
	switch c := v.(type) {
	case byte:
		f.putc(s, c)
	case rune:
		f.putc(s, byte(c))
	case int:
		f.putc(s, byte(c))
	case missingArg:
		f.puts(s, errMissingArg)
	default:
		f.puts(s, errWrongArgType)
	}
}

// fmtString emits a string or []byte argument applying width and precision.
// A nil []byte renders as the literal "(null)".
func (f *formatter) fmtString(s sink, v interface{}, spec *convSpec) {
	var (
		str   string
		bytes []byte
		n     int
	)

	switch sv := v.(type) {
	case string:
		str = sv
		n = len(sv)
	case []byte:
		if sv == nil {
			bytes = nullValue
		} else {
			bytes = sv
		}
		n = len(bytes)
	case missingArg:
		f.puts(s, errMissingArg)
		return
	default:
		f.puts(s, errWrongArgType)
		return
	}

	if spec.dot && spec.prec >= 0 && n > spec.prec {
		n = spec.prec
	}

	if !spec.ladjust {
		f.pad(s, ' ', spec.width-n)
	}
	if bytes != nil {
		f.puts(s, bytes[:n])
	} else {
		f.putstr(s, str[:n])
	}
	if spec.ladjust {
		f.pad(s, ' ', spec.width-n)
	}
}

// fmtBitfield expands the %b conversion: the integer value followed by a
// control string. The control string's first byte selects the output base;
// the rest is a sequence of 1-based bit numbers, each followed by the bit's
// name (characters greater than ' ').
func (f *formatter) fmtBitfield(s sink, spec *convSpec, args []interface{}, argIndex *int) {
	arg := argAt(args, argIndex)
	num, ok := fetchUint(arg, spec.lmod)
	if !ok {
		f.fetchError(s, arg)
		return
	}

	var ctl string
	switch cv := argAt(args, argIndex).(type) {
	case string:
		ctl = cv
	case []byte:
		ctl = string2view(cv)
	case missingArg:
		f.puts(s, errMissingArg)
		return
	default:
		f.puts(s, errWrongArgType)
		return
	}

	if len(ctl) == 0 {
		return
	}

	var plain convSpec
	plain.prec = -1
	f.number(s, num, uint64(ctl[0]), false, &plain)
	ctl = ctl[1:]

	if num == 0 {
		return
	}

	any := false
	for i := 0; i < len(ctl); {
		bit := ctl[i]
		i++
		if bit >= 1 && bit <= 64 && num&(1<<(bit-1)) != 0 {
			if any {
				f.putc(s, ',')
			} else {
				f.putc(s, '<')
			}
			any = true
			for ; i < len(ctl) && ctl[i] > ' '; i++ {
				f.putc(s, ctl[i])
			}
		} else {
			for ; i < len(ctl) && ctl[i] > ' '; i++ {
			}
		}
	}
	if any {
		f.putc(s, '>')
	}
}

// fmtHexDump expands the %D conversion: a []byte dumped as two hex digits
// per byte with a separator string between bytes. The width field selects
// the byte count (16 when absent) clamped to the buffer length.
func (f *formatter) fmtHexDump(s sink, spec *convSpec, args []interface{}, argIndex *int) {
	var buf []byte
	switch bv := argAt(args, argIndex).(type) {
	case []byte:
		buf = bv
	case missingArg:
		f.puts(s, errMissingArg)
		return
	default:
		f.puts(s, errWrongArgType)
		return
	}

	var sep string
	switch sv := argAt(args, argIndex).(type) {
	case string:
		sep = sv
	case []byte:
		sep = string2view(sv)
	case missingArg:
		f.puts(s, errMissingArg)
		return
	default:
		f.puts(s, errWrongArgType)
		return
	}

	set := digits
	if spec.upper {
		set = upperDigits
	}

	count := spec.width
	if count == 0 {
		count = 16
	}
	if count > len(buf) {
		count = len(buf)
	}

	for i := 0; i < count; i++ {
		f.putc(s, set[buf[i]>>4])
		f.putc(s, set[buf[i]&0x0f])
		if i+1 < count {
			f.putstr(s, sep)
		}
	}
}

// fmtStoreCount implements %n: the running character count is stored through
// the pointer argument. The pointer's own type selects the store width, which
// subsumes the C length modifier.
func (f *formatter) fmtStoreCount(s sink, v interface{}) {
	switch p := v.(type) {
	case *int:
		*p = f.count
	case *int8:
		*p = int8(f.count)
	case *int16:
		*p = int16(f.count)
	case *int32:
		*p = int32(f.count)
	case *int64:
		*p = int64(f.count)
	case *uint:
		*p = uint(f.count)
	case *uint8:
		*p = uint8(f.count)
	case *uint16:
		*p = uint16(f.count)
	case *uint32:
		*p = uint32(f.count)
	case *uint64:
		*p = uint64(f.count)
	case *uintptr:
		*p = uintptr(f.count)
	case missingArg:
		f.puts(s, errMissingArg)
	default:
		f.puts(s, errWrongArgType)
	}
}

// fetchError reports a failed argument fetch: an exhausted argument list
// renders "(MISSING)", anything else renders "%!(WRONGTYPE)".
func (f *formatter) fetchError(s sink, arg interface{}) {
	if _, exhausted := arg.(missingArg); exhausted {
		f.puts(s, errMissingArg)
		return
	}
	f.puts(s, errWrongArgType)
}

// missingArg is a marker returned by argAt when the argument list has been
// exhausted.
type missingArg struct{}

// argAt returns the argument at *index, advancing the index. When the list
// is exhausted it returns the missingArg marker so each conversion can
// report the error inline without panicking.
func argAt(args []interface{}, index *int) interface{} {
	if *index >= len(args) {
		*index = len(args) + 1
		return missingArg{}
	}
	v := args[*index]
	*index++
	return v
}

// clampPad bounds a width or precision value to [0, maxPad].
func clampPad(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxPad {
		return maxPad
	}
	return v
}

// magnitude returns the absolute value of v as a uint64 without overflowing
// on the most negative value.
func magnitude(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// truncInt applies a C length modifier to a fetched signed value.
func truncInt(v int64, lmod byte) int64 {
	switch lmod {
	case 'H':
		return int64(int8(v))
	case 'h':
		return int64(int16(v))
	}
	return v
}

// truncUint applies a C length modifier to a fetched unsigned value.
func truncUint(v uint64, lmod byte) uint64 {
	switch lmod {
	case 'H':
		return uint64(uint8(v))
	case 'h':
		return uint64(uint16(v))
	}
	return v
}

// fetchInt fetches a signed integer argument. Unsigned argument types are
// accepted and reinterpreted at the requested width, matching C varargs
// semantics where the conversion letter decides signedness.
func fetchInt(v interface{}, lmod byte) (int64, bool) {
	switch iv := v.(type) {
	case int:
		return truncInt(int64(iv), lmod), true
	case int8:
		return truncInt(int64(iv), lmod), true
	case int16:
		return truncInt(int64(iv), lmod), true
	case int32:
		return truncInt(int64(iv), lmod), true
	case int64:
		return truncInt(iv, lmod), true
	case uint:
		return truncInt(int64(iv), lmod), true
	case uint8:
		return truncInt(int64(iv), lmod), true
	case uint16:
		return truncInt(int64(iv), lmod), true
	case uint32:
		return truncInt(int64(iv), lmod), true
	case uint64:
		return truncInt(int64(iv), lmod), true
	case uintptr:
		return truncInt(int64(iv), lmod), true
	}
	return 0, false
}

// fetchUint fetches an unsigned integer argument; see fetchInt.
func fetchUint(v interface{}, lmod byte) (uint64, bool) {
	switch uv := v.(type) {
	case uint:
		return truncUint(uint64(uv), lmod), true
	case uint8:
		return truncUint(uint64(uv), lmod), true
	case uint16:
		return truncUint(uint64(uv), lmod), true
	case uint32:
		return truncUint(uint64(uv), lmod), true
	case uint64:
		return truncUint(uv, lmod), true
	case uintptr:
		return truncUint(uint64(uv), lmod), true
	case unsafe.Pointer:
		return truncUint(uint64(uintptr(uv)), lmod), true
	case int:
		return truncUint(uint64(uv), lmod), true
	case int8:
		return truncUint(uint64(uv), lmod), true
	case int16:
		return truncUint(uint64(uv), lmod), true
	case int32:
		return truncUint(uint64(uv), lmod), true
	case int64:
		return truncUint(uint64(uv), lmod), true
	}
	return 0, false
}

// string2view reinterprets a byte slice as a string without copying. The
// result is only valid while the slice is not mutated; callers never retain
// it past the current conversion.
func string2view(p []byte) string {
	return *(*string)(unsafe.Pointer(&p))
}

// doWrite is a proxy that uses the runtime.noescape hack to hide p from the
// compiler's escape analysis. Without this hack, the compiler cannot properly
// detect that p does not escape (due to the call to the yet unknown w
// io.Writer) and plays it safe by flagging it as escaping. This would make
// every output path allocate, which crashes the kernel if a call is made
// before the Go allocator is initialized.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w != nil {
		w.Write(p)
	} else {
		earlyPrintBuffer.Write(p)
	}
}

// noEscape hides a pointer from escape analysis. This function is copied
// over from runtime/stubs.go
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
