// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package otp retrieves the hardware unique key burned in the SoC
// fuses, through the vendor SiP service of the secure monitor firmware.
//
// The key is meant for derivation of secure storage keys, it is never
// logged and never kept by this package past the duration of a single
// monitor call.
package otp

import (
	"errors"
	"log"
)

// KeySize is the hardware unique key length in bytes.
const KeySize = 16

// bufferAlign matches the cache line alignment the monitor firmware
// expects for the key destination buffer.
const bufferAlign = 64

// SiP service call identifiers
const (
	// FNID_SIP_HW_UNQ_KEY requests the hardware unique key.
	FNID_SIP_HW_UNQ_KEY = 0xff14

	// SMC32 fast call, SiP service owner
	fastCall = 1 << 31
	ownerSiP = 2 << 24

	// HwUniqueKey is the assembled fast call function identifier.
	HwUniqueKey = fastCall | ownerSiP | FNID_SIP_HW_UNQ_KEY
)

// ErrSecurity flags a monitor refusal to release the hardware unique
// key.
var ErrSecurity = errors.New("security violation")

// MonitorCall issues a secure monitor call with the argument function
// identifier, physical buffer address and length, returning the
// monitor status, negative on failure.
type MonitorCall func(fn uint32, pa uint, size int) int

// GetKey fills the argument buffer, which must be KeySize long, with
// the hardware unique key.
//
// The key transits through a transient cache line aligned buffer whose
// physical address is passed to the monitor, each invocation reserves
// its own buffer as the underlying call is not reentrant.
//
// On a negative monitor status the destination buffer is left
// untouched, so that stale or zero bytes cannot be mistaken for a valid
// key, and ErrSecurity is returned.
func GetKey(mc MonitorCall, key []byte) error {
	if len(key) != KeySize {
		return errors.New("invalid key buffer size")
	}

	if mc == nil {
		return errors.New("missing monitor call support")
	}

	pa, buf, release := reserve(KeySize, bufferAlign)
	defer release()

	if mc(HwUniqueKey, pa, KeySize) < 0 {
		log.Printf("hardware unique key was not released by the monitor")
		return ErrSecurity
	}

	copy(key, buf)

	return nil
}
