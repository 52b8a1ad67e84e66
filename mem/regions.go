// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago
// +build tamago

package mem

import (
	"github.com/usbarmory/tamago/dma"
)

var NonSecureRegion *dma.Region

// Init reserves the Normal World OS memory for kernel loading.
func Init() {
	NonSecureRegion = &dma.Region{
		Start: NonSecureStart,
		Size:  NonSecureSize,
	}

	NonSecureRegion.Init()
	NonSecureRegion.Reserve(NonSecureSize, 0)
}
