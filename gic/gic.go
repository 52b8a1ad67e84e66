// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// ARM Generic Interrupt Controller (GICv2) driver
//
// Supported SoCs:
//   - LS1021A, LS1043A (GIC-400)
//
// The register blocks are accessed in native order, their base
// addresses vary with SoC flavor and silicon revision (see resolve.go).
package gic

import (
	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

// GIC register block offsets from the controller base address, by
// register page alignment.
const (
	GICD_4K_OFFSET  = 0x1000
	GICC_4K_OFFSET  = 0x2000
	GICD_64K_OFFSET = 0x10000
	GICC_64K_OFFSET = 0x20000
)

// distributor registers
const (
	GICD_CTLR      = 0x000
	GICD_TYPER     = 0x004
	GICD_IGROUPR   = 0x080
	GICD_ISENABLER = 0x100
	GICD_ICENABLER = 0x180

	GICD_CTLR_ENABLEGRP1 = 1 << 1
	GICD_CTLR_ENABLEGRP0 = 1 << 0
)

// CPU interface registers
const (
	GICC_CTLR = 0x000
	GICC_PMR  = 0x004

	GICC_CTLR_FIQEN      = 1 << 3
	GICC_CTLR_ENABLEGRP1 = 1 << 1
	GICC_CTLR_ENABLEGRP0 = 1 << 0

	GICC_PMR_PRIORITY = 0xff
)

// GIC represents the interrupt controller instance.
type GIC struct {
	// Base is the controller physical base address.
	Base uint
	// Bus controls register access
	Bus mmio.Bus

	// resolved register block addresses
	gicc uint
	gicd uint
}

func (hw *GIC) dist(off uint) mmio.LE32 {
	return mmio.LE32{Bus: hw.Bus, Addr: hw.gicd + off}
}

func (hw *GIC) cpu(off uint) mmio.LE32 {
	return mmio.LE32{Bus: hw.Bus, Addr: hw.gicc + off}
}

// Init initializes the distributor with the argument register block
// addresses and programs the calling (primary) core interface. It must
// be invoked once, before any secondary core calls InitCPU.
func (hw *GIC) Init(gicc uint, gicd uint) {
	if gicd == 0 {
		panic("could not resolve GIC distributor")
	}

	hw.gicc = gicc
	hw.gicd = gicd

	// route interrupts to the Secure World as FIQ group 0
	hw.dist(GICD_CTLR).Write(GICD_CTLR_ENABLEGRP0 | GICD_CTLR_ENABLEGRP1)

	hw.InitCPU()
}

// InitCPU programs the calling core CPU interface, it must follow, and
// never precede, the primary core Init.
func (hw *GIC) InitCPU() {
	if hw.gicd == 0 {
		panic("GIC is not initialized")
	}

	if hw.gicc == 0 {
		// No separate CPU interface register block (GICv3 and
		// later manage it through system registers), the driver
		// contract for this case is under verification.
		return
	}

	hw.cpu(GICC_PMR).Write(GICC_PMR_PRIORITY)
	hw.cpu(GICC_CTLR).Write(GICC_CTLR_ENABLEGRP0 | GICC_CTLR_ENABLEGRP1 | GICC_CTLR_FIQEN)
}

// EnableInterrupt forwards the argument interrupt to the configured
// group.
func (hw *GIC) EnableInterrupt(id int) {
	if hw.gicd == 0 {
		panic("GIC is not initialized")
	}

	hw.dist(GICD_ISENABLER + uint(4*(id/32))).Set(1 << (id % 32))
}

// CPU returns the resolved CPU interface register block address, zero
// on controllers without a separate block.
func (hw *GIC) CPU() uint {
	return hw.gicc
}

// Distributor returns the resolved distributor register block address.
func (hw *GIC) Distributor() uint {
	return hw.gicd
}
