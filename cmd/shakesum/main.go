// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// shakesum is a checksum command for the FIPS 202 and SP 800-185
// function families. It reads the named files, or standard input when no
// files are given, and prints one digest per input. With -mackey it
// computes KMAC tags instead of plain digests.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/keccakio/go-sha3/sha3"
)

var familiesByName = map[string]sha3.Family{
	"sha3-224":  sha3.SHA3_224,
	"sha3-256":  sha3.SHA3_256,
	"sha3-384":  sha3.SHA3_384,
	"sha3-512":  sha3.SHA3_512,
	"shake128":  sha3.SHAKE128,
	"shake256":  sha3.SHAKE256,
	"cshake128": sha3.CSHAKE128,
	"cshake256": sha3.CSHAKE256,
}

func main() {
	app := &cli.App{
		Name:      "shakesum",
		Usage:     "print SHA-3, SHAKE, cSHAKE, or KMAC checksums",
		ArgsUsage: "[file ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "shake256",
				Usage:   "family: sha3-{224,256,384,512}, shake{128,256}, cshake{128,256}",
			},
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"n"},
				Value:   64,
				Usage:   "output length in bytes for the XOF families",
			},
			&cli.StringFlag{
				Name:    "function-name",
				Aliases: []string{"N"},
				Usage:   "cSHAKE function-name string (reserved for NIST-defined functions)",
			},
			&cli.StringFlag{
				Name:    "customization",
				Aliases: []string{"S"},
				Usage:   "cSHAKE customization string",
			},
			&cli.StringFlag{
				Name:  "mackey",
				Usage: "ASCII MAC key; compute KMAC instead of a plain digest",
			},
			&cli.BoolFlag{
				Name:  "base64",
				Usage: "print base64url digests instead of hex",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "shakesum: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	f, ok := familiesByName[c.String("algorithm")]
	if !ok {
		return fmt.Errorf("unknown algorithm %q", c.String("algorithm"))
	}
	if c.Int("length") < 0 {
		return fmt.Errorf("negative output length %d", c.Int("length"))
	}

	if c.NArg() == 0 {
		digest, err := sum(c, f, os.Stdin)
		if err != nil {
			return err
		}
		fmt.Printf("%s  -\n", encode(c, digest))
		return nil
	}
	for _, name := range c.Args().Slice() {
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		digest, err := sum(c, f, file)
		file.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Printf("%s  %s\n", encode(c, digest), name)
	}
	return nil
}

// sum streams r through the hasher selected by the flags and returns the
// digest.
func sum(c *cli.Context, f sha3.Family, r io.Reader) ([]byte, error) {
	w, finish, err := newSummer(c, f)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(w, r); err != nil {
		return nil, err
	}
	return finish()
}

// newSummer returns a writer absorbing the input and a function
// producing the final digest.
func newSummer(c *cli.Context, f sha3.Family) (io.Writer, func() ([]byte, error), error) {
	olen := c.Int("length")
	fn := []byte(c.String("function-name"))
	custom := []byte(c.String("customization"))

	if key := c.String("mackey"); key != "" {
		var k *sha3.KMAC
		var err error
		switch f {
		case sha3.SHAKE128, sha3.CSHAKE128:
			k, err = sha3.NewKMAC128([]byte(key), custom, olen)
		default:
			k, err = sha3.NewKMAC256([]byte(key), custom, olen)
		}
		if err != nil {
			return nil, nil, err
		}
		return k, func() ([]byte, error) { return k.Sum(nil), nil }, nil
	}

	switch f {
	case sha3.SHA3_224, sha3.SHA3_256, sha3.SHA3_384, sha3.SHA3_512:
		var h hash.Hash
		switch f {
		case sha3.SHA3_224:
			h = sha3.New224()
		case sha3.SHA3_256:
			h = sha3.New256()
		case sha3.SHA3_384:
			h = sha3.New384()
		default:
			h = sha3.New512()
		}
		return h, func() ([]byte, error) { return h.Sum(nil), nil }, nil

	case sha3.CSHAKE128, sha3.CSHAKE256:
		x, err := newCShake(f, fn, custom)
		if err != nil {
			return nil, nil, err
		}
		return x, readN(x, olen), nil

	default: // SHAKE128, SHAKE256
		var x sha3.XOF
		if f == sha3.SHAKE128 {
			x = sha3.NewShake128()
		} else {
			x = sha3.NewShake256()
		}
		return x, readN(x, olen), nil
	}
}

func newCShake(f sha3.Family, fn, custom []byte) (sha3.XOF, error) {
	if f == sha3.CSHAKE128 {
		return sha3.NewCShake128(fn, custom)
	}
	return sha3.NewCShake256(fn, custom)
}

func readN(x sha3.XOF, olen int) func() ([]byte, error) {
	return func() ([]byte, error) {
		digest := make([]byte, olen)
		if _, err := x.Read(digest); err != nil {
			return nil, err
		}
		return digest, nil
	}
}

func encode(c *cli.Context, digest []byte) string {
	if c.Bool("base64") {
		return base64.URLEncoding.EncodeToString(digest)
	}
	return hex.EncodeToString(digest)
}
