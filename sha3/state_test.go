// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// Lifecycle tests: the uninit/absorbing/finalized state machine, clone
// independence, reset idempotence, and zeroization.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateBeforeStarts(t *testing.T) {
	var d State
	err := d.Update([]byte("x"))
	require.ErrorIs(t, err, ErrBadInput)

	err = d.Finish(make([]byte, 32))
	require.ErrorIs(t, err, ErrBadInput)
}

func TestUseAfterFinish(t *testing.T) {
	var d State
	require.NoError(t, d.Starts(SHA3_256))
	require.NoError(t, d.Update([]byte("abc")))
	out := make([]byte, 32)
	require.NoError(t, d.Finish(out))

	require.ErrorIs(t, d.Update([]byte("more")), ErrBadInput)
	require.ErrorIs(t, d.Finish(out), ErrBadInput)

	// Starts is the only way out of the finalized state.
	require.NoError(t, d.Starts(SHA3_256))
	require.NoError(t, d.Update([]byte("abc")))
	again := make([]byte, 32)
	require.NoError(t, d.Finish(again))
	require.Equal(t, out, again)
}

func TestUnknownFamily(t *testing.T) {
	var d State
	require.ErrorIs(t, d.Starts(Family(-1)), ErrBadInput)
	require.ErrorIs(t, d.Starts(familyCount), ErrBadInput)
	require.ErrorIs(t, Sum(Family(99), nil, nil), ErrBadInput)
}

func TestStartsCShakeRejectsOtherFamilies(t *testing.T) {
	var d State
	for _, f := range []Family{SHA3_224, SHA3_256, SHA3_384, SHA3_512, SHAKE128, SHAKE256} {
		require.ErrorIs(t, d.StartsCShake(f, nil, nil), ErrBadInput, f.String())
	}
}

func TestFixedDigestLength(t *testing.T) {
	lengths := map[Family]int{
		SHA3_224: 28,
		SHA3_256: 32,
		SHA3_384: 48,
		SHA3_512: 64,
	}
	for f, want := range lengths {
		var d State
		require.NoError(t, d.Starts(f))
		for _, olen := range []int{0, want - 1, want + 1, 2 * want} {
			require.ErrorIs(t, d.Finish(make([]byte, olen)), ErrBadInput, "%s olen=%d", f, olen)
		}
		// The failed finishes must not have disturbed the session.
		require.NoError(t, d.Finish(make([]byte, want)))
	}
}

func TestCloneIndependence(t *testing.T) {
	var src State
	require.NoError(t, src.Starts(SHAKE256))
	require.NoError(t, src.Update([]byte("shared prefix")))

	dst := src.Clone()
	require.NoError(t, dst.Update(sequentialBytes(1000)))
	sink := make([]byte, 32)
	require.NoError(t, dst.Finish(sink))

	// src is unaffected by anything done to dst.
	fromSrc := make([]byte, 32)
	require.NoError(t, src.Update([]byte(" and a suffix")))
	require.NoError(t, src.Finish(fromSrc))

	fresh := make([]byte, 32)
	require.NoError(t, Sum(SHAKE256, []byte("shared prefix and a suffix"), fresh))
	require.Equal(t, fresh, fromSrc)
}

func TestCloneFinalized(t *testing.T) {
	var d State
	require.NoError(t, d.Starts(SHA3_256))
	require.NoError(t, d.Finish(make([]byte, 32)))
	dup := d.Clone()
	require.ErrorIs(t, dup.Update(nil), ErrBadInput)
}

func TestResetIdempotence(t *testing.T) {
	var once, twice State
	require.NoError(t, once.Starts(SHAKE128))
	require.NoError(t, twice.Starts(SHAKE128))
	require.NoError(t, twice.Starts(SHAKE128))
	require.Equal(t, once, twice)

	// Starts discards any absorbed data.
	require.NoError(t, twice.Update([]byte("garbage")))
	require.NoError(t, twice.Starts(SHAKE128))
	require.Equal(t, once, twice)
}

func TestInitAndFreeZeroize(t *testing.T) {
	var d State
	require.NoError(t, d.Starts(SHA3_512))
	require.NoError(t, d.Update(sequentialBytes(500)))

	d.Init()
	require.Equal(t, State{}, d)

	require.NoError(t, d.Starts(SHA3_512))
	require.NoError(t, d.Update(sequentialBytes(500)))
	d.Free()
	require.Equal(t, State{}, d)

	var nilState *State
	nilState.Free() // no-op, must not panic
}

func TestZeroLengthUpdate(t *testing.T) {
	var a, b State
	require.NoError(t, a.Starts(SHA3_256))
	require.NoError(t, b.Starts(SHA3_256))
	require.NoError(t, a.Update(nil))
	require.NoError(t, a.Update([]byte{}))
	require.Equal(t, b, a)
}

func TestFamilyString(t *testing.T) {
	require.Equal(t, "SHA3-256", SHA3_256.String())
	require.Equal(t, "cSHAKE128", CSHAKE128.String())
	require.Equal(t, "unknown", Family(42).String())
}
