package random

import "crypto/rand"

// Bytes returns n cryptographically random bytes.
func Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

const printable = "!\"#$%&'()*+,-./0123456789:;<=>?@" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`" +
	"abcdefghijklmnopqrstuvwxyz{|}~"

// Printable returns n random bytes from the printable ASCII range,
// usable as generated password material.
func Printable(n int) []byte {
	b := Bytes(n)
	for i, v := range b {
		b[i] = printable[int(v)%len(printable)]
	}
	return b
}
