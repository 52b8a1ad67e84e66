// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// NXP Central Security Unit (CSU) driver
//
// Supported SoCs:
//   - LS1021A - Reference Manual - Chapter 13: Central Security Unit
//
// The CSU config security level (CSL) registers restrict which security
// domains may reach each peripheral on the bus.
package csu

import (
	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

// CSL register range and peripheral assignments
const (
	CSL_START = 0x00
	CSL_END   = 0xe8

	// security critical peripherals
	CSL30 = 0x78
	CSL37 = 0x94
)

// CSL register values
const (
	// ACCESS_ALL opens a peripheral to all bus masters.
	ACCESS_ALL = 0x00ff00ff
	// ACCESS_SEC_ONLY restricts a peripheral to Secure World access.
	ACCESS_SEC_ONLY = 0x003f003f
	// SETTING_LOCK makes a CSL register immutable until the next
	// power cycle.
	SETTING_LOCK = 0x01000100
)

// CSU represents the Central Security Unit instance.
type CSU struct {
	// Base register
	Base uint
	// Bus controls register access
	Bus mmio.Bus
}

func (hw *CSU) reg(off uint) mmio.BE32 {
	return mmio.BE32{Bus: hw.Bus, Addr: hw.Base + off}
}

// Init applies the boot access control policy on the primary core,
// before any NonSecure code runs: every CSL register is first set to
// allow all bus masters, the registers guarding security critical
// peripherals are then restricted to Secure World access, finally the
// lock bit is set throughout so the policy cannot be altered.
//
// The grant, restrict, lock order is required: locking before
// restricting would seal an open policy, restricting before granting
// would leave a window with undefined peripheral access.
func (hw *CSU) Init() {
	if hw.Base == 0 || hw.Bus == nil {
		panic("invalid CSU instance")
	}

	// grant all peripherals
	for off := uint(CSL_START); off != CSL_END; off += 4 {
		hw.reg(off).Write(ACCESS_ALL)
	}

	// restrict key peripherals from NonSecure
	hw.reg(CSL30).Write(ACCESS_SEC_ONLY)
	hw.reg(CSL37).Write(ACCESS_SEC_ONLY)

	// lock the settings
	for off := uint(CSL_START); off != CSL_END; off += 4 {
		hw.reg(off).Set(SETTING_LOCK)
	}
}

// Peek returns the current value of the CSL register at the argument
// offset.
func (hw *CSU) Peek(off uint) uint32 {
	return hw.reg(off).Read()
}
