// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	_ "unsafe"

	"github.com/usbarmory/GoTEE-layerscape/otp"
	"github.com/usbarmory/GoTEE-layerscape/rng"
	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/internal"
)

// The SoC SEC job ring, and therefore its RNG, is left to Normal World
// ownership, the TamaGo runtime entropy source is a software DRBG
// personalized with the hardware unique key (see package rng).
var getRandomDataFn func([]byte)

//go:linkname initRNG runtime.initRNG
func initRNG() {
	huk := make([]byte, otp.KeySize)

	if err := lstee.SecureStorageKey(huk); err != nil {
		panic(fmt.Sprintf("could not obtain DRBG personalization key, %v", err))
	}

	fn, err := rng.New(huk)

	if err != nil {
		panic(err.Error())
	}

	getRandomDataFn = fn
}

//go:linkname getRandomData runtime.getRandomData
func getRandomData(b []byte) {
	getRandomDataFn(b)
}
