// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package plat performs Secure World platform bring-up for supported
// NXP Layerscape SoCs and publishes the monitor call dispatch table.
package plat

import (
	"github.com/usbarmory/GoTEE-layerscape/boot"
	"github.com/usbarmory/GoTEE-layerscape/csu"
	"github.com/usbarmory/GoTEE-layerscape/dcfg"
	"github.com/usbarmory/GoTEE-layerscape/gic"
	"github.com/usbarmory/GoTEE-layerscape/mem"
	"github.com/usbarmory/GoTEE-layerscape/mmio"
	"github.com/usbarmory/GoTEE-layerscape/uart"
)

// Console is the port registered as early diagnostic output sink, set
// by the primary core during InitPrimary and never relocated.
var Console *uart.UART

// Device declares a physical region requiring a device memory mapping
// (no caching, strict ordering) in the argument security domain.
type Device struct {
	Area mmio.Area
	Base uint
	Size int
}

// Platform describes an SoC bring-up configuration and owns the
// hardware singletons for the lifetime of the trusted OS. The
// singletons are written by the primary core bring-up only, per-core
// operations on them are read-only thereafter.
type Platform struct {
	// Name is the SoC identifier.
	Name string

	// DUART1 is the console port.
	DUART1 *uart.UART
	// CSU is the access control unit, nil when the SoC lacks one.
	CSU *csu.CSU
	// DCFG is the device configuration unit.
	DCFG *dcfg.DCFG
	// GIC is the interrupt controller.
	GIC *gic.GIC

	// SCFGBase is the supplemental configuration unit base address.
	SCFGBase uint
	// AlignedGIC selects revision dependent register block alignment
	// probing for GIC address resolution.
	AlignedGIC bool
	// GICCOffset, GICDOffset are the fixed register block offsets,
	// used when AlignedGIC is false. A zero GICCOffset leaves the
	// CPU interface unresolved.
	GICCOffset uint
	GICDOffset uint

	// FirmwarePower indicates cooperative power management firmware.
	FirmwarePower bool
	// BootSecondary requests secondary core release at boot, when
	// not firmware driven.
	BootSecondary bool
	// Entry is the boot address published on secondary core release.
	Entry uint32

	// FastCall, StdCall service synchronous monitor calls.
	FastCall boot.Handler
	StdCall  boot.Handler

	// Bus controls register access
	Bus mmio.Bus
	// MMU resolves physical device addresses
	MMU mmio.Mapper

	handlers *boot.Handlers
}

// LS1021A returns the platform definition for LS1021A based boards
// (TWR, QDS).
func LS1021A(bus mmio.Bus, mmu mmio.Mapper) *Platform {
	return &Platform{
		Name: "LS1021A",

		DUART1: &uart.UART{
			Base:  0x021c0500,
			Clock: 150000000,
			Baud:  115200,
			Bus:   bus,
		},

		CSU:  &csu.CSU{Base: 0x01510000, Bus: bus},
		DCFG: &dcfg.DCFG{Base: 0x01ee0000, Bus: bus},
		GIC:  &gic.GIC{Base: 0x01400000, Bus: bus},

		GICCOffset: gic.GICC_4K_OFFSET,
		GICDOffset: gic.GICD_4K_OFFSET,

		BootSecondary: true,
		Entry:         mem.SecureStart,

		Bus: bus,
		MMU: mmu,
	}
}

// LS1043A returns the platform definition for LS1043ARDB boards, whose
// GIC register block alignment depends on the silicon revision.
func LS1043A(bus mmio.Bus, mmu mmio.Mapper) *Platform {
	return &Platform{
		Name: "LS1043A",

		DUART1: &uart.UART{
			Base:  0x021c0500,
			Clock: 200000000,
			Baud:  115200,
			Bus:   bus,
		},

		DCFG: &dcfg.DCFG{Base: 0x01ee0000, Bus: bus},
		GIC:  &gic.GIC{Base: 0x01400000, Bus: bus},

		SCFGBase:   0x01570000,
		AlignedGIC: true,

		FirmwarePower: true,

		Bus: bus,
		MMU: mmu,
	}
}

// Devices returns the device windows to map before bring-up, one page
// each: the console port in the NonSecure domain and the interrupt
// controller in the Secure one.
func (p *Platform) Devices() []Device {
	return []Device{
		{mmio.NonSecure, p.DUART1.Base &^ (mem.PageSize - 1), mem.PageSize},
		{mmio.Secure, p.GIC.Base, mem.PageSize},
	}
}

// InitPrimary performs cold boot bring-up, on the primary core only,
// strictly before any NonSecure code runs: optional secondary core
// release, peripheral access control, console and interrupt controller
// initialization, dispatch table construction.
//
// It is meant to be invoked exactly once per boot, re-invocation is
// unsupported.
func (p *Platform) InitPrimary() {
	if p.BootSecondary {
		// release secondary cores to the Secure World entry
		p.DCFG.ReleaseSecondary(1, p.Entry)
	}

	if p.CSU != nil {
		p.CSU.Init()
	}

	p.DUART1.Init()
	Console = p.DUART1

	var gicc, gicd uint

	if p.AlignedGIC {
		gicc, gicd = gic.ResolveAligned(p.Bus, p.MMU, p.GIC.Base, p.DCFG.Base, p.SCFGBase)
	} else {
		gicc, gicd = gic.Resolve(p.MMU, p.GIC.Base, p.GICCOffset, p.GICDOffset)
	}

	p.GIC.Init(gicc, gicd)

	p.handlers = boot.Define(boot.Config{
		FastCall:      p.FastCall,
		StdCall:       p.StdCall,
		FirmwarePower: p.FirmwarePower,
		CPUOn:         p.cpuOn,
	})
}

// InitSecondary programs the calling secondary core interrupt
// interface, it must follow, and never precede, the primary core
// InitPrimary.
func (p *Platform) InitSecondary() {
	p.GIC.InitCPU()
}

// cpuOn services a firmware coordinated secondary core power-on.
func (p *Platform) cpuOn(_ boot.Call) error {
	p.InitSecondary()
	return nil
}

// Handlers returns the monitor call dispatch table built by
// InitPrimary.
func (p *Platform) Handlers() *boot.Handlers {
	if p.handlers == nil {
		panic("platform is not initialized")
	}

	return p.handlers
}
