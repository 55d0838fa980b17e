package kfmt

import (
	"io"
	"testing"
)

func TestRingBuffer(t *testing.T) {
	var rb ringBuffer

	if _, err := rb.Read(make([]byte, 1)); err != io.EOF {
		t.Fatalf("expected read on empty buffer to return io.EOF; got %v", err)
	}

	payload := []byte("the quick brown fox jumps over the lazy dog")
	if n, err := rb.Write(payload); n != len(payload) || err != nil {
		t.Fatalf("expected write to return (%d, nil); got (%d, %v)", len(payload), n, err)
	}

	got := make([]byte, len(payload))
	if n, err := rb.Read(got); n != len(payload) || err != nil {
		t.Fatalf("expected read to return (%d, nil); got (%d, %v)", len(payload), n, err)
	}

	if string(got) != string(payload) {
		t.Fatalf("expected to read back %q; got %q", payload, got)
	}
}

func TestRingBufferOverflow(t *testing.T) {
	var rb ringBuffer

	// Fill the buffer so the write index laps the read index; the oldest
	// bytes must be dropped.
	for i := 0; i < ringBufferSize; i++ {
		rb.Write([]byte{'x'})
	}
	rb.Write([]byte("tail"))

	drained := 0
	tmp := make([]byte, 128)
	var last []byte
	for {
		n, err := rb.Read(tmp)
		if err == io.EOF {
			break
		}
		drained += n
		last = append(last[:0], tmp[:n]...)
	}

	if drained != ringBufferSize-1 {
		t.Fatalf("expected to drain %d bytes; got %d", ringBufferSize-1, drained)
	}

	if tail := string(last[len(last)-4:]); tail != "tail" {
		t.Fatalf("expected drained data to end in %q; got %q", "tail", tail)
	}
}
