// Package secret ties the valid-use window of an in-memory secret to an
// explicit scope. A Secret takes ownership of the caller's byte slice and
// destroys it exactly once on Close, so the material does not linger until
// garbage collection:
//
//	pwd := []byte("my pwd")
//	s := secret.New(pwd)
//	defer s.Close()
//	b, err := s.Bytes()
//	// use b while the secret is live; after Close, pwd is overwritten too
package secret

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"

	"example.com/secretscope/pkg/wiper"
)

var (
	// ErrWiped reports use of content that has already been destroyed.
	ErrWiped = errors.New("secret content already wiped")
	// ErrOutOfRange reports an index or range outside the buffer.
	ErrOutOfRange = errors.New("secret index out of range")
)

// Secret owns a mutable byte buffer and wipes it when closed. The zero
// value is not usable; construct with New. Wiping is terminal: there is
// no way to re-arm a closed Secret.
type Secret struct {
	content []byte
	wiper   wiper.Wiper
	wiped   atomic.Bool
}

// Option configures a Secret at construction time.
type Option func(*Secret)

// WithWiper selects the wipe strategy. A nil wiper is ignored and the
// default mask is kept, so construction never fails.
func WithWiper(w wiper.Wiper) Option {
	return func(s *Secret) {
		if w != nil {
			s.wiper = w
		}
	}
}

// WithFiller selects a constant-fill wipe with the given byte.
func WithFiller(filler byte) Option {
	return func(s *Secret) { s.wiper = wiper.Static{Filler: filler} }
}

// New wraps content in a Secret. No copy is made: the Secret takes over
// the exact slice, so the wipe on Close reaches the caller's allocation.
// A nil slice is normalized to an empty buffer.
func New(content []byte, opts ...Option) *Secret {
	if content == nil {
		content = []byte{}
	}
	s := &Secret{content: content, wiper: wiper.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len reports the buffer length. Legal in any state, since length does
// not expose content.
func (s *Secret) Len() int { return len(s.content) }

// At returns the byte currently stored at index i. It reads whatever is
// there, wiped or not; callers that care about original content must
// check liveness themselves.
func (s *Secret) At(i int) (byte, error) {
	if i < 0 || i >= len(s.content) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(s.content))
	}
	return s.content[i], nil
}

// Bytes returns the live buffer by reference, not a copy. The slice
// belongs to the Secret: do not retain it beyond the secret's scope.
// Returns ErrWiped once the secret is closed.
func (s *Secret) Bytes() ([]byte, error) {
	if s.wiped.Load() {
		return nil, ErrWiped
	}
	return s.content, nil
}

// Sub copies the range [start, end) into a brand-new Secret with its own
// lifecycle and the default wiper. Use with caution: the parent buffer
// still holds the copied range until the parent is wiped, and the copy
// must be closed separately.
func (s *Secret) Sub(start, end int) (*Secret, error) {
	if start < 0 || start > end || end > len(s.content) {
		return nil, fmt.Errorf("%w: start %d, end %d, length %d", ErrOutOfRange, start, end, len(s.content))
	}
	cp := make([]byte, end-start)
	copy(cp, s.content[start:end])
	return New(cp), nil
}

// Compare orders byte-lexicographically, a shorter prefix before its
// longer extension. A nil other compares less than any present secret,
// so the result is +1. Returns ErrWiped if either side has been closed.
func (s *Secret) Compare(other *Secret) (int, error) {
	if s.wiped.Load() {
		return 0, fmt.Errorf("%w: receiver", ErrWiped)
	}
	if other == nil {
		return 1, nil
	}
	if other.wiped.Load() {
		return 0, fmt.Errorf("%w: operand", ErrWiped)
	}
	return bytes.Compare(s.content, other.content), nil
}

// Equal is the nil-safe counterpart to Compare: two nils are equal,
// exactly one nil is not, and neither case errors. With both present it
// defers to Compare and so rejects wiped operands.
func Equal(a, b *Secret) (bool, error) {
	if a == nil && b == nil {
		return true, nil
	}
	if a == nil || b == nil {
		return false, nil
	}
	c, err := a.Compare(b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Close wipes the buffer and marks the secret terminal. Only the first
// caller wipes; concurrent and repeated calls are no-ops. The error is
// always nil and exists to satisfy io.Closer.
func (s *Secret) Close() error {
	if s.wiped.CompareAndSwap(false, true) {
		s.wiper.Wipe(s.content)
	}
	return nil
}

// String returns a wiped copy of the content, live or not. This
// deliberately violates the usual "Stringer reflects the value"
// convention so that accidental logging stays harmless; the returned
// string never aliases the owned buffer.
func (s *Secret) String() string {
	cp := make([]byte, len(s.content))
	copy(cp, s.content)
	s.wiper.Wipe(cp)
	return string(cp)
}

// MarshalText emits the same masked form as String, so text-based
// encoders (encoding/json included) can never see the raw content.
func (s *Secret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GobEncode refuses generic binary serialization outright.
func (s *Secret) GobEncode() ([]byte, error) {
	return nil, errors.New("secret: refusing to serialize secret content")
}
