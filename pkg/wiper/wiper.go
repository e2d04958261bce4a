package wiper

import (
	"github.com/awnumar/memguard"
)

// Wiper overwrites a buffer in place. Implementations must cover the
// whole buffer, must not allocate a replacement, and must accept any
// length including zero.
type Wiper interface {
	Wipe(buf []byte)
}

// Func adapts a plain function to a Wiper.
type Func func([]byte)

func (f Func) Wipe(buf []byte) { f(buf) }

// Static fills every byte with Filler.
type Static struct {
	Filler byte
}

func (w Static) Wipe(buf []byte) {
	for i := range buf {
		buf[i] = w.Filler
	}
}

// Default masks with '*', the filler used when nothing else is chosen.
var Default Wiper = Static{Filler: '*'}

// Zero overwrites with zeros.
var Zero Wiper = Func(memguard.WipeBytes)

// Scramble overwrites with cryptographically random bytes.
var Scramble Wiper = Func(memguard.ScrambleBytes)
