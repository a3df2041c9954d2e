// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file provides hash.Hash adapters for the four fixed-output-length
// families, along with one-shot digest helpers.

import (
	"crypto"
	"hash"
)

func init() {
	crypto.RegisterHash(crypto.SHA3_224, New224)
	crypto.RegisterHash(crypto.SHA3_256, New256)
	crypto.RegisterHash(crypto.SHA3_384, New384)
	crypto.RegisterHash(crypto.SHA3_512, New512)
}

// digest adapts a fixed-output-length State to hash.Hash.
type digest struct {
	s State
}

func newDigest(f Family) *digest {
	d := new(digest)
	d.s.Starts(f)
	return d
}

func (d *digest) Reset()         { d.s.Starts(d.s.family) }
func (d *digest) Size() int      { return d.s.outputLen }
func (d *digest) BlockSize() int { return d.s.rate }

func (d *digest) Write(p []byte) (int, error) {
	if err := d.s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the digest to in. The caller can keep writing and summing:
// padding and squeezing happen on a throwaway copy of the state.
func (d *digest) Sum(in []byte) []byte {
	dup := d.s.Clone()
	out := make([]byte, dup.outputLen)
	dup.Finish(out)
	return append(in, out...)
}

// New224 creates a new SHA3-224 hash. Its generic security strength is
// 224 bits against preimage attacks and 112 bits against collisions.
func New224() hash.Hash {
	if h := new224Asm(); h != nil {
		return h
	}
	return newDigest(SHA3_224)
}

// New256 creates a new SHA3-256 hash. Its generic security strength is
// 256 bits against preimage attacks and 128 bits against collisions.
func New256() hash.Hash {
	if h := new256Asm(); h != nil {
		return h
	}
	return newDigest(SHA3_256)
}

// New384 creates a new SHA3-384 hash.
func New384() hash.Hash {
	if h := new384Asm(); h != nil {
		return h
	}
	return newDigest(SHA3_384)
}

// New512 creates a new SHA3-512 hash.
func New512() hash.Hash {
	if h := new512Asm(); h != nil {
		return h
	}
	return newDigest(SHA3_512)
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (digest [28]byte) {
	oneShot(SHA3_224, data, digest[:])
	return
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (digest [32]byte) {
	oneShot(SHA3_256, data, digest[:])
	return
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (digest [48]byte) {
	oneShot(SHA3_384, data, digest[:])
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (digest [64]byte) {
	oneShot(SHA3_512, data, digest[:])
	return
}

// oneShot is Sum for internally-constructed arguments, where a length
// mismatch cannot happen.
func oneShot(f Family, data, out []byte) {
	if err := Sum(f, data, out); err != nil {
		panic("sha3: " + err.Error())
	}
}

// new224Asm returns an accelerated implementation of SHA3-224 if
// available, otherwise nil. A backend substituted here must preserve
// bit-exact outputs and the streaming contract of State.
func new224Asm() hash.Hash { return nil }

// new256Asm returns an accelerated implementation of SHA3-256 if
// available, otherwise nil.
func new256Asm() hash.Hash { return nil }

// new384Asm returns an accelerated implementation of SHA3-384 if
// available, otherwise nil.
func new384Asm() hash.Hash { return nil }

// new512Asm returns an accelerated implementation of SHA3-512 if
// available, otherwise nil.
func new512Asm() hash.Hash { return nil }
