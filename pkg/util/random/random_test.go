package random

import (
	"bytes"
	"testing"
)

func TestBytesLength(t *testing.T) {
	for _, n := range []int{0, 1, 32} {
		if got := len(Bytes(n)); got != n {
			t.Fatalf("len(Bytes(%d)) = %d", n, got)
		}
	}
}

func TestBytesVary(t *testing.T) {
	if bytes.Equal(Bytes(32), Bytes(32)) {
		t.Fatalf("two 32-byte draws were identical")
	}
}

func TestPrintableRange(t *testing.T) {
	b := Printable(256)
	for i, c := range b {
		if c < '!' || c > '~' {
			t.Fatalf("byte %d = %#x outside printable range", i, c)
		}
	}
}
