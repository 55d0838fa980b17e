package kfmt

// bufSink writes formatted output into a caller-supplied buffer without any
// bounds checking. It backs the unbounded Sprintf contract.
type bufSink struct {
	buf []byte
	pos int
}

func (s *bufSink) putc(b byte) {
	s.buf[s.pos] = b
	s.pos++
}

// boundedSink stores at most cap(buf)-1 bytes while the formatter keeps
// counting every byte it produces, so the caller can detect truncation by
// comparing the returned count against the buffer capacity.
type boundedSink struct {
	buf   []byte
	limit int
	pos   int
}

func (s *boundedSink) putc(b byte) {
	if s.pos < s.limit {
		s.buf[s.pos] = b
		s.pos++
	}
}

// Sprintf formats into buf and returns the number of characters produced.
// The destination is unbounded by contract: the caller must pre-size buf
// (typically via a Snprintf size probe), and an undersized buffer panics on
// the runtime bounds check. Prefer Snprintf.
func Sprintf(buf []byte, format string, args ...interface{}) int {
	s := bufSink{buf: buf}
	var f formatter
	f.run(&s, 10, format, args)
	return f.count
}

// Snprintf formats into buf, writing at most len(buf)-1 characters and
// NUL-terminating the result whenever len(buf) >= 1. The returned count is
// the number of characters the full expansion produces, excluding the NUL,
// whether or not it was truncated.
//
// Calling Snprintf with a nil or empty buffer writes nothing and returns the
// exact count, enabling the two-pass idiom for sizing a stack buffer:
//
//	n := kfmt.Snprintf(nil, format, args...)
//	buf := make([]byte, n+1) // or an adequately sized local array
//	kfmt.Snprintf(buf, format, args...)
func Snprintf(buf []byte, format string, args ...interface{}) int {
	return Snrprintf(buf, 10, format, args...)
}

// Snrprintf behaves like Snprintf using radix as the default base for the
// %r conversion. A radix outside [2,36] falls back to 10.
func Snrprintf(buf []byte, radix int, format string, args ...interface{}) int {
	s := boundedSink{buf: buf}
	if len(buf) > 0 {
		s.limit = len(buf) - 1
	}

	var f formatter
	f.run(&s, radix, format, args)

	if len(buf) > 0 {
		buf[s.pos] = 0
	}
	return f.count
}
