// Package managed decouples producing a closable resource from using it,
// guaranteeing release on every exit path.
package managed

import (
	"errors"
	"io"
)

var (
	// ErrNilFactory reports a Resource built without a factory.
	ErrNilFactory = errors.New("managed: nil resource factory")
	// ErrNilFunc reports a nil consumer or transform.
	ErrNilFunc = errors.New("managed: nil consumer")
)

// Resource pairs a factory for a closable resource with the guarantee
// that each acquired instance is closed before control returns to the
// caller, whether the consumer succeeds or fails.
type Resource[C io.Closer] struct {
	factory func() (C, error)
}

// From builds a Resource around a factory. The resource it produces may
// be nil-like; the factory itself must not be.
func From[C io.Closer](factory func() (C, error)) Resource[C] {
	return Resource[C]{factory: factory}
}

// Of wraps an already-constructed resource for a single managed use.
func Of[C io.Closer](res C) Resource[C] {
	return Resource[C]{factory: func() (C, error) { return res, nil }}
}

// Use acquires one resource, runs fn against it and closes it on every
// exit path, panics included. A consumer failure and a close failure are
// both surfaced via errors.Join; neither masks the other. A nil fn is
// rejected before anything is acquired.
func (r Resource[C]) Use(fn func(C) error) (err error) {
	if fn == nil {
		return ErrNilFunc
	}
	if r.factory == nil {
		return ErrNilFactory
	}
	res, err := r.factory()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, res.Close()) }()
	return fn(res)
}

// Get is Use for transforms that produce a value. The result is computed
// first, the resource released, and only then does the caller receive
// it. A top-level function because Go methods cannot add type
// parameters.
func Get[C io.Closer, T any](r Resource[C], fn func(C) (T, error)) (out T, err error) {
	if fn == nil {
		return out, ErrNilFunc
	}
	if r.factory == nil {
		return out, ErrNilFactory
	}
	res, ferr := r.factory()
	if ferr != nil {
		return out, ferr
	}
	defer func() { err = errors.Join(err, res.Close()) }()
	return fn(res)
}
