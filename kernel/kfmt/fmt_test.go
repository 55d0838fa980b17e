package kfmt

import (
	"bytes"
	"testing"
)

func TestFprintf(t *testing.T) {
	// mute vet warnings about the non-fmt conversion set
	fprintfn := Fprintf

	specs := []struct {
		fn        func(*bytes.Buffer) int
		expOutput string
	}{
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "no args") },
			"no args",
		},
		// signed decimal
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%d", -42) },
			"-42",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%i", 42) },
			"42",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%5d'", 42) },
			"'   42'",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%-5d'", 42) },
			"'42   '",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%05d'", -42) },
			"'-0042'",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%+d/%+d", 42, -42) },
			"+42/-42",
		},
		// unsigned, octal, hex
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%u", uint32(4294967295)) },
			"4294967295",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%o", uint16(0777)) },
			"777",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%#o", uint16(0777)) },
			"0777",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%x %X", uint32(0xbadf00d), uint32(0xbadf00d)) },
			"badf00d BADF00D",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%#x", uint32(0xbeef)) },
			"0xbeef",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%#010x'", uint32(0xbeef)) },
			"'0x0000beef'",
		},
		// a zero value must not grow an alternate-form prefix
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%#x%#o", 0, 0) },
			"00",
		},
		// pointers imply the '#' flag when no width is given
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%p", uintptr(0xb8000)) },
			"0xb8000",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%8p'", uintptr(0xb8000)) },
			"'   b8000'",
		},
		// runtime width/precision
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%*d'", 5, 42) },
			"'   42'",
		},
		// a negative runtime width flips justification
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%*d'", -5, 42) },
			"'42   '",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%.*s", 2, "abc") },
			"ab",
		},
		// length modifiers truncate at fetch time
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%hhd", 300) },
			"44",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%hd", 65541) },
			"5",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%hhu", uint32(300)) },
			"44",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%lld", int64(-9223372036854775808)) },
			"-9223372036854775808",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%jd %zu %td", int64(-7), uint(7), 7) },
			"-7 7 7",
		},
		// strings
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%s arg", "STRING") },
			"STRING arg",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%s arg", []byte("BYTE SLICE")) },
			"BYTE SLICE arg",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%5.2s'", "abc") },
			"'   ab'",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "'%-5.2s'", "abc") },
			"'ab   '",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%.2s", "abc") },
			"ab",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%s", []byte(nil)) },
			"(null)",
		},
		// characters
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%c%c%c", 'O', byte('K'), 33) },
			"OK!",
		},
		// bitfield decoding
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%b", uint8(3), "\x02\x01PWR\x02FAN") },
			"11<PWR,FAN>",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%b", uint8(2), "\x02\x01PWR\x02FAN") },
			"10<FAN>",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%b", 0, "\x0a\x01PWR") },
			"0",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "reg=%b", uint32(0x10), "\x10\x05HALT") },
			"reg=10<HALT>",
		},
		// hex dumps
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%D", []byte{0xde, 0xad, 0xbe, 0xef}, ":") },
			"de:ad:be:ef",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%3D", []byte{1, 2, 3, 4}, " ") },
			"01 02 03",
		},
		// literal percent; a %% inside an argument is never reinterpreted
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "100%%") },
			"100%",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "Whup %s\r\nOh.\r\n", "Yo%%nk") },
			"Whup Yo%%nk\r\nOh.\r\n",
		},
		// an unrecognized conversion letter emits the raw conversion text
		// and disables all further % interpretation for this call
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "bad %q verb, then %d %s", 1, "x") },
			"bad %q verb, then %d %s",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "%-08Zw%d", 1) },
			"%-08Zw%d",
		},
		// a conversion cut short by the end of the format string is
		// emitted verbatim
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "dangling %-05") },
			"dangling %-05",
		},
		// argument-list mismatches render inline markers
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "missing %s and %d") },
			"missing (MISSING) and (MISSING)",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "more args", "foo", "bar") },
			"more args%!(EXTRA)%!(EXTRA)",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "not int %d", "foo") },
			"not int %!(WRONGTYPE)",
		},
		{
			func(b *bytes.Buffer) int { return fprintfn(b, "not string %s", 123) },
			"not string %!(WRONGTYPE)",
		},
	}

	var buf bytes.Buffer
	for specIndex, spec := range specs {
		buf.Reset()
		count := spec.fn(&buf)

		if got := buf.String(); got != spec.expOutput {
			t.Errorf("[spec %d] expected to get\n%q\ngot:\n%q", specIndex, spec.expOutput, got)
		}

		if count != len(spec.expOutput) {
			t.Errorf("[spec %d] expected returned count to be %d; got %d", specIndex, len(spec.expOutput), count)
		}
	}
}

func TestStoreCountConversion(t *testing.T) {
	var (
		buf     bytes.Buffer
		n       int
		n8      int8
		n64     uint64
		printfn = Fprintf
	)

	if got := printfn(&buf, "abc%nde%n", &n, &n64); got != 5 {
		t.Fatalf("expected returned count to be 5; got %d", got)
	}

	if n != 3 || n64 != 5 {
		t.Fatalf("expected %%n to store 3 and 5; got %d and %d", n, n64)
	}

	buf.Reset()
	printfn(&buf, "xy%hhn", &n8)
	if n8 != 2 {
		t.Fatalf("expected %%hhn to store 2; got %d", n8)
	}

	if got := buf.String(); got != "xy" {
		t.Fatalf("expected %%n to emit no output; got %q", got)
	}
}

func TestPrintfToRingBuffer(t *testing.T) {
	defer func() {
		outputSink = nil
		earlyPrintBuffer.rIndex = 0
		earlyPrintBuffer.wIndex = 0
	}()
	outputSink = nil

	exp := "early hello"
	Printf(exp)

	var buf bytes.Buffer
	SetOutputSink(&buf)

	if got := buf.String(); got != exp {
		t.Fatalf("expected to get:\n%q\ngot:\n%q", exp, got)
	}

	if got := GetOutputSink(); got != &buf {
		t.Fatalf("expected GetOutputSink to return the attached writer; got %v", got)
	}
}
