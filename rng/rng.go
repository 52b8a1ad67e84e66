// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package rng derives a runtime entropy source from a device unique
// secret, through an SP 800-90A CTR DRBG seeded over HKDF.
package rng

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/canonical/go-sp800.90a-drbg"
)

// DRBG instantiation sizes
const (
	seedSize  = 256
	nonceSize = 128
)

// New returns a random data function personalized with the argument
// device unique secret.
//
// The output is deterministic per secret, it serves runtime needs
// (e.g. hash seeds) and must not feed key generation.
func New(secret []byte) (func([]byte), error) {
	if len(secret) == 0 {
		return nil, errors.New("missing personalization secret")
	}

	kdf := hkdf.New(sha256.New, secret, nil, []byte("runtime entropy"))

	seed := make([]byte, seedSize)
	nonce := make([]byte, nonceSize)

	// a short read would silently weaken the DRBG seeding
	if _, err := io.ReadFull(kdf, seed); err != nil {
		return nil, fmt.Errorf("could not derive DRBG seed, %v", err)
	}

	if _, err := io.ReadFull(kdf, nonce); err != nil {
		return nil, fmt.Errorf("could not derive DRBG nonce, %v", err)
	}

	rng, err := drbg.NewCTRWithExternalEntropy(32, seed, nonce, nil, nil)

	if err != nil {
		return nil, fmt.Errorf("could not instantiate DRBG, %v", err)
	}

	return func(b []byte) {
		if _, err := rng.Read(b); err != nil {
			panic(fmt.Sprintf("DRBG generate failure, %v", err))
		}
	}, nil
}
