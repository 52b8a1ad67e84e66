// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago
// +build tamago

package otp

import (
	"github.com/usbarmory/tamago/dma"
)

// reserve returns an aligned transient buffer from the default DMA
// region, whose physical address can be passed to the monitor.
func reserve(size int, align int) (pa uint, buf []byte, release func()) {
	addr, buf := dma.Reserve(size, align)

	return uint(addr), buf, func() {
		dma.Release(addr)
	}
}
