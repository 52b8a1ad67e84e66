// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

// This memory layout splits the first LS1021A DDR bank between the
// Normal World OS and the Secure World, which owns the top of the bank.
const (
	// Secure World OS
	SecureStart = 0xbc000000
	SecureSize  = 0x03f00000 // 63MB

	// Secure World DMA (kept out of NonSecure reach)
	SecureDMAStart = 0xbff00000
	SecureDMASize  = 0x00100000 // 1MB

	// NonSecure World OS
	NonSecureStart = 0x80000000
	NonSecureSize  = 0x10000000 // 256MB
)

// PageSize is the device mapping granule.
const PageSize = 0x1000
