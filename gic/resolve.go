// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gic

import (
	"log"

	"github.com/usbarmory/tamago/bits"

	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

// Register block alignment probing (LS1043A):
// rev 1.0 silicon aligns the GIC register blocks to 4KB pages, rev 1.1
// honors the SCFG GIC400 alignment register address bit, selecting 4KB
// alignment when set and 64KB otherwise.
const (
	DCFG_SVR          = 0x0a4
	SCFG_GIC400_ALIGN = 0x188

	REV1_1       = 0x11
	GIC_ADDR_BIT = 31

	registerSize = 4
)

// resolve translates the argument Secure device register address,
// requesting a single on-demand mapping when absent. A translation
// failure past that is fatal, there is no hardware state to continue
// with.
func resolve(mmu mmio.Mapper, pa uint) uint {
	va := mmu.Translate(mmio.Secure, pa)

	if va == 0 {
		if !mmu.Map(mmio.Secure, pa, registerSize) {
			log.Printf("unable to map register %#08x", pa)
		}

		va = mmu.Translate(mmio.Secure, pa)
	}

	if va == 0 {
		panic("could not resolve GIC configuration register")
	}

	return va
}

// Resolve translates the GIC register blocks at fixed offsets from the
// argument controller base. A zero CPU interface offset skips its
// resolution, for controllers without a separate CPU interface register
// block.
func Resolve(mmu mmio.Mapper, base uint, giccOffset uint, gicdOffset uint) (gicc uint, gicd uint) {
	if giccOffset != 0 {
		if gicc = mmu.Translate(mmio.Secure, base+giccOffset); gicc == 0 {
			panic("could not resolve GIC CPU interface")
		}
	}

	gicd = mmu.Translate(mmio.Secure, base+gicdOffset)

	return
}

// ResolveAligned translates the GIC register blocks on SoCs whose
// register page alignment depends on the silicon revision, probing the
// DCFG version register and, on rev 1.1 parts, the SCFG GIC400
// alignment register.
//
// All probed registers are big-endian wired, each is resolved with at
// most one on-demand mapping attempt.
func ResolveAligned(bus mmio.Bus, mmu mmio.Mapper, base uint, dcfgBase uint, scfgBase uint) (gicc uint, gicd uint) {
	giccOffset := uint(GICC_4K_OFFSET)
	gicdOffset := uint(GICD_4K_OFFSET)

	svr := resolve(mmu, dcfgBase+DCFG_SVR)
	rev := mmio.BE32{Bus: bus, Addr: svr}.Read()

	if rev&0xff == REV1_1 {
		align := resolve(mmu, scfgBase+SCFG_GIC400_ALIGN)
		val := mmio.BE32{Bus: bus, Addr: align}.Read()

		if bits.Get(&val, GIC_ADDR_BIT, 1) == 0 {
			giccOffset = GICC_64K_OFFSET
			gicdOffset = GICD_64K_OFFSET
		}
	}

	gicc = mmu.Translate(mmio.Secure, base+giccOffset)
	gicd = mmu.Translate(mmio.Secure, base+gicdOffset)

	return
}
