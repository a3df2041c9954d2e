// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Family identifies one of the FIPS 202 hash and extendable-output
// function families, or one of the SP 800-185 cSHAKE families.
type Family int

const (
	SHA3_224 Family = iota
	SHA3_256
	SHA3_384
	SHA3_512
	SHAKE128
	SHAKE256
	CSHAKE128
	CSHAKE256

	familyCount
)

// String returns the NIST name of the family.
func (f Family) String() string {
	switch f {
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	case SHAKE128:
		return "SHAKE128"
	case SHAKE256:
		return "SHAKE256"
	case CSHAKE128:
		return "cSHAKE128"
	case CSHAKE256:
		return "cSHAKE256"
	}
	return "unknown"
}

// ErrBadInput is the single error kind reported by this package. Every
// fallible operation wraps it, so callers can test with errors.Is.
var ErrBadInput = errors.New("sha3: bad input data")

var (
	errUnknownFamily = fmt.Errorf("%w: unknown family id", ErrBadInput)
	errNotCShake     = fmt.Errorf("%w: family id is not cSHAKE128 or cSHAKE256", ErrBadInput)
	errNotStarted    = fmt.Errorf("%w: context has not been started", ErrBadInput)
	errFinished      = fmt.Errorf("%w: context is no longer absorbing", ErrBadInput)
	errDigestLength  = fmt.Errorf("%w: output length does not match the digest size", ErrBadInput)
	errStringTooLong = fmt.Errorf("%w: framed string longer than 2^61 bytes", ErrBadInput)
)

const (
	// spongeSize is the width of the Keccak-f[1600] state in bytes.
	spongeSize = 200
	// maxRate is the largest rate of any family (SHAKE128 and cSHAKE128).
	maxRate = 168
)

const (
	dsbyteSHA3   = 0x06
	dsbyteShake  = 0x1f
	dsbyteCShake = 0x04
)

// params describes one family: the absorption rate in bytes, the mandated
// digest length (0 when the caller chooses the length at finish time), and
// the domain-separation suffix xored in ahead of the 10..1 padding.
type params struct {
	rate      int
	outputLen int
	dsbyte    byte
}

// The cSHAKE rows carry the SHAKE suffix; StartsCShake switches to 0x04
// once any framing has been absorbed.
var families = [familyCount]params{
	SHA3_224:  {rate: 144, outputLen: 28, dsbyte: dsbyteSHA3},
	SHA3_256:  {rate: 136, outputLen: 32, dsbyte: dsbyteSHA3},
	SHA3_384:  {rate: 104, outputLen: 48, dsbyte: dsbyteSHA3},
	SHA3_512:  {rate: 72, outputLen: 64, dsbyte: dsbyteSHA3},
	SHAKE128:  {rate: 168, outputLen: 0, dsbyte: dsbyteShake},
	SHAKE256:  {rate: 136, outputLen: 0, dsbyte: dsbyteShake},
	CSHAKE128: {rate: 168, outputLen: 0, dsbyte: dsbyteShake},
	CSHAKE256: {rate: 136, outputLen: 0, dsbyte: dsbyteShake},
}

// spongePhase tags the lifecycle position of a State, so misuse is caught
// by an explicit check rather than a rate-field sentinel.
type spongePhase int

const (
	phaseUninit spongePhase = iota
	phaseAbsorbing
	phaseSqueezing
	phaseFinal
)

// State is a streaming hash or XOF context. The zero value is an
// unstarted context; call Starts or StartsCShake before Update.
//
// A State must not be used from more than one goroutine at a time.
// Distinct States are fully independent; use Clone to fork a session.
type State struct {
	a   [25]uint64    // main state of the hash
	buf [maxRate]byte // input/output window, rate bytes of it in use
	n   int           // byte index within the rate window

	rate      int // the number of bytes of state to use
	outputLen int // mandated digest length; 0 for XOFs
	dsbyte    byte
	family    Family
	phase     spongePhase
}

// SpongeSize returns the width of the underlying sponge state in bytes.
// For Keccak-f[1600] this is always 200.
func (d *State) SpongeSize() int { return spongeSize }

// Rate returns the byte rate of the sponge, or 0 before Starts.
func (d *State) Rate() int { return d.rate }

// SecurityStrength returns the generic security strength of this instance
// in bits, 8 * ((SpongeSize() - Rate()) / 2).
func (d *State) SecurityStrength() int { return 8 * (spongeSize - d.rate) / 2 }

// Family returns the family the context was last started with.
func (d *State) Family() Family { return d.family }

// Init brings the context to its zero, unstarted form. It never fails and
// may be called on a context in any phase.
func (d *State) Init() { *d = State{} }

// Free zeroizes the context so partial input cannot leak through memory
// reuse. A nil receiver is a no-op.
func (d *State) Free() {
	if d == nil {
		return
	}
	*d = State{}
}

// Clone returns an independent deep copy of the context, in whatever
// phase the source is in.
func (d *State) Clone() *State {
	dup := *d
	return &dup
}

// Starts resets the context and begins a new session for family f. Any id
// from the table is accepted; a cSHAKE id behaves exactly as the SHAKE of
// the same strength (no framing, suffix 0x1f) until StartsCShake is used.
func (d *State) Starts(f Family) error {
	if f < 0 || f >= familyCount {
		return errUnknownFamily
	}
	p := families[f]
	*d = State{
		rate:      p.rate,
		outputLen: p.outputLen,
		dsbyte:    p.dsbyte,
		family:    f,
		phase:     phaseAbsorbing,
	}
	return nil
}

// StartsCShake resets the context and begins a cSHAKE session with
// function-name string fn and customization string custom. When both
// strings are empty, cSHAKE degenerates to SHAKE and no preamble is
// absorbed; otherwise bytepad(encode_string(fn)||encode_string(custom), rate)
// is absorbed ahead of user data and the suffix switches to 0x04.
func (d *State) StartsCShake(f Family, fn, custom []byte) error {
	if f != CSHAKE128 && f != CSHAKE256 {
		return errNotCShake
	}
	if uint64(len(fn)) >= maxEncodeLen || uint64(len(custom)) >= maxEncodeLen {
		return errStringTooLong
	}
	if err := d.Starts(f); err != nil {
		return err
	}
	if len(fn) == 0 && len(custom) == 0 {
		return nil
	}
	d.dsbyte = dsbyteCShake
	d.absorbPreamble(fn, custom)
	return nil
}

// absorbPreamble feeds bytepad(encode_string(fn)||encode_string(custom), rate)
// through the ordinary absorb path, piecewise, so customization strings
// spanning many rate blocks never need a contiguous buffer. bytepad rounds
// to a whole number of blocks, so the preamble always leaves the window
// empty with the state freshly permuted.
func (d *State) absorbPreamble(fn, custom []byte) {
	var enc [9]byte
	d.absorb(leftEncode(&enc, uint64(d.rate)))
	d.absorb(leftEncode(&enc, uint64(len(fn))*8))
	d.absorb(fn)
	d.absorb(leftEncode(&enc, uint64(len(custom))*8))
	d.absorb(custom)
	if d.n != 0 {
		d.absorb(make([]byte, d.rate-d.n))
	}
}

// Update absorbs p into the state. A zero-length update is a no-op; p may
// be nil only when empty. Updating a context that has not been started,
// or that has produced output, fails with ErrBadInput.
func (d *State) Update(p []byte) error {
	switch d.phase {
	case phaseAbsorbing:
	case phaseUninit:
		return errNotStarted
	default:
		return errFinished
	}
	d.absorb(p)
	return nil
}

// Finish pads the message, permutes, and squeezes exactly len(out) bytes.
// For the fixed-digest families len(out) must equal the mandated digest
// length; for the XOF families any length, including zero, is permitted.
// Afterwards the context is finalized: further Update or Finish fails
// until Starts is called again.
func (d *State) Finish(out []byte) error {
	switch d.phase {
	case phaseAbsorbing:
	case phaseUninit:
		return errNotStarted
	default:
		return errFinished
	}
	if d.outputLen != 0 && len(out) != d.outputLen {
		return errDigestLength
	}
	d.padAndPermute()
	d.squeeze(out)
	d.phase = phaseFinal
	return nil
}

// absorb xors p into the state at the current window index, permuting at
// every rate boundary. Streaming a||b is byte-for-byte identical to
// streaming a then b.
func (d *State) absorb(p []byte) {
	for len(p) > 0 {
		if d.n == 0 && len(p) >= d.rate {
			// The fast path: a full block straight from the input.
			xorBytesFrom(&d.a, p[:d.rate])
			keccakF1600(&d.a)
			p = p[d.rate:]
			continue
		}
		// The slow path: fill the window until a block is complete.
		w := copy(d.buf[d.n:d.rate], p)
		d.n += w
		p = p[w:]
		if d.n == d.rate {
			xorBytesFrom(&d.a, d.buf[:d.rate])
			keccakF1600(&d.a)
			d.n = 0
		}
	}
}

// padAndPermute writes the domain-separation suffix at the window index,
// xors the 10..1 closing bit into the last byte of the block, permutes,
// and readies the window for squeezing. When the suffix lands on the last
// byte of the block, the xor lets it share that byte with the closing bit.
func (d *State) padAndPermute() {
	for i := d.n; i < d.rate; i++ {
		d.buf[i] = 0
	}
	d.buf[d.n] = d.dsbyte
	d.buf[d.rate-1] ^= 0x80
	xorBytesFrom(&d.a, d.buf[:d.rate])
	keccakF1600(&d.a)
	copyBytesInto(d.buf[:d.rate], &d.a)
	d.n = 0
	d.phase = phaseSqueezing
}

// squeeze copies output from the window, permuting for a fresh block each
// time the window runs dry.
func (d *State) squeeze(out []byte) {
	for len(out) > 0 {
		if d.n == d.rate {
			keccakF1600(&d.a)
			copyBytesInto(d.buf[:d.rate], &d.a)
			d.n = 0
		}
		w := copy(out, d.buf[d.n:d.rate])
		d.n += w
		out = out[w:]
	}
}

// xorBytesFrom xors buf into the lanes of a, byte-swapping to the
// little-endian lane view as necessary. len(buf) must be a multiple of 8;
// every rate is.
func xorBytesFrom(a *[25]uint64, buf []byte) {
	for i := 0; len(buf) >= 8; i++ {
		a[i] ^= binary.LittleEndian.Uint64(buf)
		buf = buf[8:]
	}
}

// copyBytesInto copies lanes into a byte buffer in the same little-endian
// view. len(buf) must be a multiple of 8.
func copyBytesInto(buf []byte, a *[25]uint64) {
	for i := 0; len(buf) >= 8; i++ {
		binary.LittleEndian.PutUint64(buf, a[i])
		buf = buf[8:]
	}
}

// Sum is the one-shot form: start, absorb data, and squeeze len(out)
// bytes, zeroizing the transient context on every exit path.
func Sum(f Family, data, out []byte) error {
	var d State
	defer d.Free()
	if err := d.Starts(f); err != nil {
		return err
	}
	if err := d.Update(data); err != nil {
		return err
	}
	return d.Finish(out)
}

// SumCShake is the one-shot cSHAKE form of Sum.
func SumCShake(f Family, fn, custom, data, out []byte) error {
	var d State
	defer d.Free()
	if err := d.StartsCShake(f, fn, custom); err != nil {
		return err
	}
	if err := d.Update(data); err != nil {
		return err
	}
	return d.Finish(out)
}
