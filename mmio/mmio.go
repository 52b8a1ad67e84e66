// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mmio provides typed access to the memory mapped registers of
// NXP Layerscape SoCs, whose CCSR peripheral space is wired big-endian
// regardless of the core byte order.
package mmio

import (
	"math/bits"
)

// Area tags the security domain of a device mapping.
type Area int

// Security domains for device mappings.
const (
	Secure Area = iota
	NonSecure
)

// Mapper resolves physical device addresses into virtual ones, creating
// mappings on demand when requested. It represents the memory
// management collaborator of the bring-up layer, the trusted OS MMU on
// hardware.
type Mapper interface {
	// Translate returns the virtual address for the argument physical
	// one, zero when unmapped.
	Translate(area Area, pa uint) uint

	// Map requests an on-demand device mapping.
	Map(area Area, pa uint, size int) bool
}

// Bus performs aligned accesses to mapped device memory.
type Bus interface {
	Read32(va uint) uint32
	Write32(va uint, val uint32)
	Read8(va uint) uint8
	Write8(va uint, val uint8)
}

// BE32 is a big-endian 32-bit memory mapped register.
type BE32 struct {
	Bus  Bus
	Addr uint
}

// Read returns the register value in host order.
func (r BE32) Read() uint32 {
	return bits.ReverseBytes32(r.Bus.Read32(r.Addr))
}

// Write sets the register to the argument host order value.
func (r BE32) Write(val uint32) {
	r.Bus.Write32(r.Addr, bits.ReverseBytes32(val))
}

// Set ORs the argument mask into the register.
func (r BE32) Set(mask uint32) {
	r.Write(r.Read() | mask)
}

// LE32 is a native order 32-bit memory mapped register.
type LE32 struct {
	Bus  Bus
	Addr uint
}

// Read returns the register value.
func (r LE32) Read() uint32 {
	return r.Bus.Read32(r.Addr)
}

// Write sets the register value.
func (r LE32) Write(val uint32) {
	r.Bus.Write32(r.Addr, val)
}

// Set ORs the argument mask into the register.
func (r LE32) Set(mask uint32) {
	r.Write(r.Read() | mask)
}

// Clear clears the argument mask from the register.
func (r LE32) Clear(mask uint32) {
	r.Write(r.Read() &^ mask)
}
