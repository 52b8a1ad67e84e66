// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Phys performs direct device memory accesses, valid once the target
// range is mapped with device attributes.
type Phys struct{}

func (Phys) Read32(va uint) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(va))))
}

func (Phys) Write32(va uint, val uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(uintptr(va))), val)
}

func (Phys) Read8(va uint) uint8 {
	return *(*uint8)(unsafe.Pointer(uintptr(va)))
}

func (Phys) Write8(va uint, val uint8) {
	*(*uint8)(unsafe.Pointer(uintptr(va))) = val
}

// Flat is the hardware Mapper: the TamaGo runtime runs on a flat
// mapping with the CCSR space configured as device memory, physical and
// virtual addresses coincide.
type Flat struct{}

func (Flat) Translate(_ Area, pa uint) uint {
	return pa
}

func (Flat) Map(_ Area, _ uint, _ int) bool {
	return true
}
