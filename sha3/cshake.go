// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// This file implements the SP 800-185 framing primitives (left_encode,
// right_encode, encode_string, bytepad) and the cSHAKE constructors and
// one-shot helpers built on them.

import (
	"bytes"
	"encoding/binary"
)

// maxEncodeLen bounds the byte length of any framed string: the framing
// encodes the length in bits as a uint64, so 2^61 bytes and up cannot be
// represented.
const maxEncodeLen = 1 << 61

// leftEncode writes the minimal big-endian encoding of value into b,
// prefixed by the byte count of that encoding, and returns the used
// portion of b. left_encode(0) is 0x01 0x00.
func leftEncode(b *[9]byte, value uint64) []byte {
	binary.BigEndian.PutUint64(b[1:], value)
	// Trim all but the last leading zero byte.
	i := 1
	for i < 8 && b[i] == 0 {
		i++
	}
	b[i-1] = byte(9 - i)
	return b[i-1:]
}

// rightEncode is leftEncode with the byte count following the value
// instead of preceding it. right_encode(0) is 0x00 0x01.
func rightEncode(b *[9]byte, value uint64) []byte {
	binary.BigEndian.PutUint64(b[:8], value)
	i := 0
	for i < 7 && b[i] == 0 {
		i++
	}
	b[8] = byte(8 - i)
	return b[i:]
}

// encodeString frames s as left_encode(8*len(s)) || s.
func encodeString(s []byte) []byte {
	var b [9]byte
	return append(append([]byte{}, leftEncode(&b, uint64(len(s))*8)...), s...)
}

// bytepad frames input as left_encode(w) || input, zero-padded to a
// multiple of w bytes.
func bytepad(input []byte, w int) []byte {
	var b [9]byte
	buf := make([]byte, 0, 9+len(input)+w)
	buf = append(buf, leftEncode(&b, uint64(w))...)
	buf = append(buf, input...)
	if rem := len(buf) % w; rem != 0 {
		buf = append(buf, make([]byte, w-rem)...)
	}
	return buf
}

// cshakeXOF is a cSHAKE instance. It retains copies of the framing
// strings so Reset can replay the preamble.
type cshakeXOF struct {
	xof
	fn     []byte
	custom []byte
}

func newCShake(f Family, fn, custom []byte) (XOF, error) {
	c := &cshakeXOF{fn: bytes.Clone(fn), custom: bytes.Clone(custom)}
	if err := c.s.StartsCShake(f, fn, custom); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset returns the instance to its post-preamble initial state.
func (c *cshakeXOF) Reset() {
	c.s.StartsCShake(c.s.family, c.fn, c.custom)
}

// Clone returns a copy of the cSHAKE instance in its current state.
func (c *cshakeXOF) Clone() XOF {
	dup := *c
	dup.fn = bytes.Clone(c.fn)
	dup.custom = bytes.Clone(c.custom)
	return &dup
}

// NewCShake128 creates a cSHAKE128 instance with function-name string fn
// and customization string custom. fn is reserved for function names
// defined by NIST; use custom for application-chosen separation. When
// both strings are empty the result is exactly SHAKE128.
func NewCShake128(fn, custom []byte) (XOF, error) {
	return newCShake(CSHAKE128, fn, custom)
}

// NewCShake256 is NewCShake128 at the 256-bit strength (rate 136).
func NewCShake256(fn, custom []byte) (XOF, error) {
	return newCShake(CSHAKE256, fn, custom)
}

// CShakeSum128 writes an arbitrary-length cSHAKE128 digest of data into
// hash.
func CShakeSum128(hash, data, fn, custom []byte) error {
	return SumCShake(CSHAKE128, fn, custom, data, hash)
}

// CShakeSum256 writes an arbitrary-length cSHAKE256 digest of data into
// hash.
func CShakeSum256(hash, data, fn, custom []byte) error {
	return SumCShake(CSHAKE256, fn, custom, data, hash)
}
