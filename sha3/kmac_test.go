// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// kmacTestKey is the 32-byte key 0x40..0x5F used throughout the NIST
// SP 800-185 sample set.
var kmacTestKey = decodeHex("404142434445464748494A4B4C4D4E4F505152535455565758595A5B5C5D5E5F")

// Samples #1, #2 and #4 from the NIST SP 800-185 KMAC sample set.
var kmacTestVectors = []struct {
	desc     string
	strength int
	data     []byte
	custom   []byte
	olen     int
	want     string
}{
	{
		desc:     "KMAC128 sample 1",
		strength: 128,
		data:     decodeHex("00010203"),
		olen:     32,
		want:     "E5780B0D3EA6F7D3A429C5706AA43A00FADBD7D49628839E3187243F456EE14E",
	},
	{
		desc:     "KMAC128 sample 2",
		strength: 128,
		data:     decodeHex("00010203"),
		custom:   []byte("My Tagged Application"),
		olen:     32,
		want:     "3B1FBA963CD8B0B59E8C1A6D71888B7143651AF8BA0A7070C0979E2811324AA5",
	},
	{
		desc:     "KMAC256 sample 4",
		strength: 256,
		data:     decodeHex("00010203"),
		custom:   []byte("My Tagged Application"),
		olen:     64,
		want: "20C570C31346F703C9AC36C61C03CB64C3970D0CFC787E9B79599D273A68D2F7" +
			"F69D4CC3DE9D104A351689F27CF6F5951F0103F33F4F24871024D9C27773A8DD",
	},
}

func newTestKMAC(t *testing.T, strength int, key, custom []byte, olen int) *KMAC {
	t.Helper()
	var k *KMAC
	var err error
	if strength == 128 {
		k, err = NewKMAC128(key, custom, olen)
	} else {
		k, err = NewKMAC256(key, custom, olen)
	}
	require.NoError(t, err)
	return k
}

func TestKMACVectors(t *testing.T) {
	for _, v := range kmacTestVectors {
		k := newTestKMAC(t, v.strength, kmacTestKey, v.custom, v.olen)
		k.Write(v.data)
		require.Equal(t, decodeHex(v.want), k.Sum(nil), v.desc)
	}
}

// TestKMACMatchesManualConstruction pins KMAC to its definition: cSHAKE
// with N = "KMAC", S = custom, over
// bytepad(encode_string(key), rate) || data || right_encode(8*olen).
func TestKMACMatchesManualConstruction(t *testing.T) {
	key := []byte("a key of arbitrary length, longer than one lane")
	custom := []byte("construction check")
	data := sequentialBytes(345)
	const olen = 48

	k := newTestKMAC(t, 256, key, custom, olen)
	k.Write(data)
	got := k.Sum(nil)

	var enc [9]byte
	var msg []byte
	msg = append(msg, bytepad(encodeString(key), 136)...)
	msg = append(msg, data...)
	msg = append(msg, rightEncode(&enc, olen*8)...)
	want := make([]byte, olen)
	require.NoError(t, SumCShake(CSHAKE256, []byte("KMAC"), custom, msg, want))

	require.Equal(t, want, got)
}

func TestKMACStreaming(t *testing.T) {
	data := sequentialBytes(1000)
	k := newTestKMAC(t, 128, kmacTestKey, nil, 32)
	k.Write(data)
	want := k.Sum(nil)

	k.Reset()
	for i := 0; i < len(data); i += 7 {
		end := i + 7
		if end > len(data) {
			end = len(data)
		}
		k.Write(data[i:end])
	}
	require.Equal(t, want, k.Sum(nil))

	// Sum does not disturb the stream.
	require.Equal(t, want, k.Sum(nil))
	require.Equal(t, 32, k.Size())
	require.Equal(t, 168, k.BlockSize())
}

// TestKMACKeySeparates: same data, different keys, unrelated MACs; and a
// different output length changes the MAC entirely (KMAC, unlike
// KMACXOF, binds the length).
func TestKMACKeySeparates(t *testing.T) {
	data := []byte("message")

	k1 := newTestKMAC(t, 128, []byte("key one"), nil, 32)
	k1.Write(data)
	k2 := newTestKMAC(t, 128, []byte("key two"), nil, 32)
	k2.Write(data)
	require.NotEqual(t, k1.Sum(nil), k2.Sum(nil))

	k3 := newTestKMAC(t, 128, []byte("key one"), nil, 33)
	k3.Write(data)
	require.NotEqual(t, k1.Sum(nil), k3.Sum(nil)[:32])
}

func TestKMACXOF(t *testing.T) {
	data := sequentialBytes(200)

	x, err := NewKMACXOF128(kmacTestKey, []byte("xof mode"))
	require.NoError(t, err)
	x.Write(data)
	long := make([]byte, 200)
	x.Read(long)

	// Prefix property holds for the XOF variant.
	y, err := NewKMACXOF128(kmacTestKey, []byte("xof mode"))
	require.NoError(t, err)
	y.Write(data)
	short := make([]byte, 64)
	y.Read(short)
	require.Equal(t, long[:64], short)

	// And it differs from fixed-length KMAC of the same size, which
	// right-encodes its length.
	k := newTestKMAC(t, 128, kmacTestKey, []byte("xof mode"), 64)
	k.Write(data)
	require.NotEqual(t, k.Sum(nil), short)

	// Reset re-keys.
	x.Reset()
	x.Write(data)
	again := make([]byte, 200)
	x.Read(again)
	require.Equal(t, long, again)
}

func TestKMACBadInputs(t *testing.T) {
	_, err := NewKMAC128(kmacTestKey, nil, 0)
	require.ErrorIs(t, err, ErrBadInput)
	_, err = NewKMAC256(kmacTestKey, nil, -5)
	require.ErrorIs(t, err, ErrBadInput)
}
