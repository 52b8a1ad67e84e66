// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package lstee

import (
	"github.com/usbarmory/GoTEE-layerscape/otp"
)

// SecureStorageKey fills the argument buffer, which must be
// otp.KeySize long, with the hardware unique key released by the
// monitor firmware.
//
// The key is the secure storage key derivation secret, it must never
// be logged or exposed outside the Secure World.
func SecureStorageKey(key []byte) error {
	return otp.GetKey(smcCall, key)
}
