// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// NXP Device Configuration Unit (DCFG) driver
//
// Supported SoCs:
//   - LS1021A - Reference Manual - Chapter 6: Device Configuration
//
// The DCFG unit exposes SoC identification and boot release controls.
package dcfg

import (
	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

// DCFG registers
const (
	DCFG_SVR        = 0x0a4
	DCFG_CCSR_BRR   = 0x0e4
	DCFG_SCRATCHRW1 = 0x200
)

// DCFG represents the Device Configuration unit instance.
type DCFG struct {
	// Base register
	Base uint
	// Bus controls register access
	Bus mmio.Bus
}

func (hw *DCFG) reg(off uint) mmio.BE32 {
	return mmio.BE32{Bus: hw.Bus, Addr: hw.Base + off}
}

// Version returns the SoC version register (SVR) value.
func (hw *DCFG) Version() uint32 {
	return hw.reg(DCFG_SVR).Read()
}

// Revision returns the silicon revision (major.minor packed nibbles)
// from the SVR low byte.
func (hw *DCFG) Revision() uint8 {
	return uint8(hw.Version() & 0xff)
}

// ReleaseSecondary publishes the argument boot entry address and
// releases the argument core out of its boot hold-off, signaling its
// wake up event once the release is visible.
func (hw *DCFG) ReleaseSecondary(core int, entry uint32) {
	if hw.Base == 0 || hw.Bus == nil {
		panic("invalid DCFG instance")
	}

	// set secondary entry address
	hw.reg(DCFG_SCRATCHRW1).Write(entry)

	// release the core
	hw.reg(DCFG_CCSR_BRR).Set(1 << core)

	dsb()
	sev()
}
