// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file defines the XOF interface and provides functions for creating
// SHAKE instances, as well as utility functions for hashing bytes to
// arbitrary-length output.

import "io"

// XOF defines the interface to hash functions that support
// arbitrary-length output.
type XOF interface {
	// Write absorbs more data into the hash's state. It reports
	// ErrBadInput if input is written after output has been read.
	io.Writer

	// Read reads more output from the hash; reading affects the hash's
	// state. (XOF.Read is thus very different from hash.Hash.Sum.) It
	// never returns an error.
	io.Reader

	// Clone returns a copy of the XOF in its current state.
	Clone() XOF

	// Reset resets the XOF to its initial state.
	Reset()
}

// xof adapts a State to the XOF interface.
type xof struct {
	s State
}

func (x *xof) Write(p []byte) (int, error) {
	if err := x.s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (x *xof) Read(p []byte) (int, error) {
	// The first read pads and permutes; absorbing is over.
	if x.s.phase == phaseAbsorbing {
		x.s.padAndPermute()
	}
	x.s.squeeze(p)
	return len(p), nil
}

func (x *xof) Reset() { x.s.Starts(x.s.family) }

func (x *xof) Clone() XOF {
	dup := *x
	return &dup
}

// NewShake128 creates a new SHAKE128 variable-output-length XOF. Its
// generic security strength is 128 bits against all attacks if at least
// 32 bytes of its output are used.
func NewShake128() XOF {
	if h := newShake128Asm(); h != nil {
		return h
	}
	x := new(xof)
	x.s.Starts(SHAKE128)
	return x
}

// NewShake256 creates a new SHAKE256 variable-output-length XOF. Its
// generic security strength is 256 bits against all attacks if at least
// 64 bytes of its output are used.
func NewShake256() XOF {
	if h := newShake256Asm(); h != nil {
		return h
	}
	x := new(xof)
	x.s.Starts(SHAKE256)
	return x
}

// ShakeSum128 writes an arbitrary-length SHAKE128 digest of data into
// hash.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Write(data)
	h.Read(hash)
}

// ShakeSum256 writes an arbitrary-length SHAKE256 digest of data into
// hash.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Write(data)
	h.Read(hash)
}

// newShake128Asm returns an accelerated implementation of SHAKE128 if
// available, otherwise nil.
func newShake128Asm() XOF { return nil }

// newShake256Asm returns an accelerated implementation of SHAKE256 if
// available, otherwise nil.
func newShake256Asm() XOF { return nil }
