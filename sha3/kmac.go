// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file implements the SP 800-185 KMAC message-authentication codes,
// which are cSHAKE instances with function name "KMAC", a bytepad-framed
// key ahead of the message, and the output length right-encoded behind it.

import (
	"bytes"
	"hash"
)

var kmacFunctionName = []byte("KMAC")

// KMAC is a keyed MAC with a fixed output length. It implements
// hash.Hash; Sum may be interleaved with further writes.
type KMAC struct {
	s         State
	key       []byte
	custom    []byte
	outputLen int
}

// NewKMAC128 returns a KMAC128 instance keyed with key, producing
// outputLen bytes, with customization string custom. The key may be of
// any length; 16 bytes or more are needed for the full 128-bit strength.
func NewKMAC128(key, custom []byte, outputLen int) (*KMAC, error) {
	return newKMAC(CSHAKE128, key, custom, outputLen)
}

// NewKMAC256 is NewKMAC128 at the 256-bit strength.
func NewKMAC256(key, custom []byte, outputLen int) (*KMAC, error) {
	return newKMAC(CSHAKE256, key, custom, outputLen)
}

func newKMAC(f Family, key, custom []byte, outputLen int) (*KMAC, error) {
	if outputLen <= 0 {
		return nil, errDigestLength
	}
	if uint64(len(key)) >= maxEncodeLen {
		return nil, errStringTooLong
	}
	k := &KMAC{
		key:       bytes.Clone(key),
		custom:    bytes.Clone(custom),
		outputLen: outputLen,
	}
	if err := k.s.StartsCShake(f, kmacFunctionName, custom); err != nil {
		return nil, err
	}
	k.absorbKey()
	return k, nil
}

// absorbKey feeds bytepad(encode_string(key), rate) through the absorb
// path, leaving the window at a block boundary.
func (k *KMAC) absorbKey() {
	var enc [9]byte
	k.s.absorb(leftEncode(&enc, uint64(k.s.rate)))
	k.s.absorb(leftEncode(&enc, uint64(len(k.key))*8))
	k.s.absorb(k.key)
	if k.s.n != 0 {
		k.s.absorb(make([]byte, k.s.rate-k.s.n))
	}
}

func (k *KMAC) Size() int      { return k.outputLen }
func (k *KMAC) BlockSize() int { return k.s.rate }

// Reset returns the MAC to its freshly-keyed state.
func (k *KMAC) Reset() {
	k.s.StartsCShake(k.s.family, kmacFunctionName, k.custom)
	k.absorbKey()
}

func (k *KMAC) Write(p []byte) (int, error) {
	if err := k.s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the MAC to in without disturbing the streaming state.
func (k *KMAC) Sum(in []byte) []byte {
	dup := k.s.Clone()
	var enc [9]byte
	dup.absorb(rightEncode(&enc, uint64(k.outputLen)*8))
	out := make([]byte, k.outputLen)
	dup.padAndPermute()
	dup.squeeze(out)
	return append(in, out...)
}

var _ hash.Hash = (*KMAC)(nil)

// kmacXOF is the arbitrary-output-length variant: the right-encoded
// length is 0, so the output length never enters the MAC computation and
// the instance squeezes like any other XOF.
type kmacXOF struct {
	KMAC
}

// NewKMACXOF128 returns a KMACXOF128 instance: KMAC128 with
// caller-chosen output length, read incrementally.
func NewKMACXOF128(key, custom []byte) (XOF, error) {
	k, err := newKMAC(CSHAKE128, key, custom, 1)
	if err != nil {
		return nil, err
	}
	return &kmacXOF{KMAC: *k}, nil
}

// NewKMACXOF256 is NewKMACXOF128 at the 256-bit strength.
func NewKMACXOF256(key, custom []byte) (XOF, error) {
	k, err := newKMAC(CSHAKE256, key, custom, 1)
	if err != nil {
		return nil, err
	}
	return &kmacXOF{KMAC: *k}, nil
}

func (k *kmacXOF) Read(p []byte) (int, error) {
	if k.s.phase == phaseAbsorbing {
		var enc [9]byte
		k.s.absorb(rightEncode(&enc, 0))
		k.s.padAndPermute()
	}
	k.s.squeeze(p)
	return len(p), nil
}

func (k *kmacXOF) Clone() XOF {
	dup := *k
	dup.key = bytes.Clone(k.key)
	dup.custom = bytes.Clone(k.custom)
	return &dup
}
