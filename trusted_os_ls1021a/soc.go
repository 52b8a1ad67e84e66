// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	_ "unsafe"

	"github.com/usbarmory/tamago/arm"
)

// ARM is the primary core instance.
var ARM = &arm.CPU{}

//go:linkname hwinit runtime.hwinit
func hwinit() {
	ARM.Init()
	ARM.EnableVFP()
	// cache coherency for the released secondary core
	ARM.EnableSMP()
	// MMU initialization is required to take advantage of data cache
	ARM.InitMMU()
	ARM.CacheEnable()

	// CNTFRQ is programmed by the boot ROM
	ARM.InitGenericTimers(0, 0)
}
