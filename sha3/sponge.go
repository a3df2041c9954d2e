// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// Sponge describes the geometry of a cryptographic sponge instance.
type Sponge interface {
	// SpongeSize returns the size, in bytes, of the state of the sponge.
	SpongeSize() int

	// Rate returns the number of bytes that can be absorbed into or
	// squeezed from the sponge before the permutation is applied.
	Rate() int

	// SecurityStrength returns the generic security strength, in bits,
	// of this sponge instance. It is equal to
	// 8 * ((SpongeSize() - Rate()) / 2).
	SecurityStrength() int
}

var _ Sponge = (*State)(nil)
