// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago
// +build !tamago

package otp

import (
	"unsafe"
)

// reserve returns an aligned transient buffer for simulated monitor
// calls, addressed by its host virtual address.
func reserve(size int, align int) (pa uint, buf []byte, release func()) {
	raw := make([]byte, size+align)
	off := align - int(uintptr(unsafe.Pointer(&raw[0]))%uintptr(align))

	buf = raw[off%align:][:size]

	return uint(uintptr(unsafe.Pointer(&buf[0]))), buf, func() {}
}
