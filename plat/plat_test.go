// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package plat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usbarmory/GoTEE-layerscape/boot"
	"github.com/usbarmory/GoTEE-layerscape/csu"
	"github.com/usbarmory/GoTEE-layerscape/dcfg"
	"github.com/usbarmory/GoTEE-layerscape/gic"
	"github.com/usbarmory/GoTEE-layerscape/mmio"
	"github.com/usbarmory/GoTEE-layerscape/uart"
)

func simLS1021A(t *testing.T) (*Platform, *mmio.Mem, *mmio.Windows) {
	t.Helper()

	bus := &mmio.Mem{}
	mmu := &mmio.Windows{}

	p := LS1021A(bus, mmu)

	for _, d := range p.Devices() {
		mmu.Add(d.Area, d.Base, d.Size)
	}

	// the full controller register range, statically mapped by the
	// memory management collaborator on hardware
	mmu.Add(mmio.Secure, p.GIC.Base, 0x40000)

	// keep the console transmitter ready
	bus.Write8(p.DUART1.Base+uart.ULSR, uart.ULSR_THRE)

	return p, bus, mmu
}

func TestColdBoot(t *testing.T) {
	p, bus, _ := simLS1021A(t)

	p.InitPrimary()

	// secondary core released to the Secure World entry
	entry := mmio.BE32{Bus: bus, Addr: p.DCFG.Base + dcfg.DCFG_SCRATCHRW1}.Read()
	brr := mmio.BE32{Bus: bus, Addr: p.DCFG.Base + dcfg.DCFG_CCSR_BRR}.Read()
	require.Equal(t, p.Entry, entry)
	require.Equal(t, uint32(1<<1), brr)

	// access control configured and locked
	for off := uint(csu.CSL_START); off != csu.CSL_END; off += 4 {
		require.NotZero(t, p.CSU.Peek(off)&csu.SETTING_LOCK)
	}
	require.Equal(t, uint32(csu.ACCESS_SEC_ONLY|csu.SETTING_LOCK), p.CSU.Peek(csu.CSL30))
	require.Equal(t, uint32(csu.ACCESS_SEC_ONLY|csu.SETTING_LOCK), p.CSU.Peek(csu.CSL37))

	// console registered as early output sink
	require.Equal(t, p.DUART1, Console)

	// interrupt controller resolved and initialized
	require.Equal(t, p.GIC.Base+gic.GICD_4K_OFFSET, p.GIC.Distributor())
	require.NotZero(t, p.GIC.CPU())

	// without firmware coordination every power transition is fatal
	h := p.Handlers()

	for _, fn := range []boot.Handler{h.CPUOn, h.CPUOff, h.CPUSuspend, h.CPUResume, h.SystemOff, h.SystemReset} {
		require.Panics(t, func() {
			fn(boot.Call{})
		})
	}

	require.Panics(t, func() {
		h.Interrupt(boot.Call{})
	})
}

func TestSecondaryOrdering(t *testing.T) {
	p, _, _ := simLS1021A(t)

	// per-core bring-up may never precede the primary core one
	require.Panics(t, func() {
		p.InitSecondary()
	})

	require.Panics(t, func() {
		p.Handlers()
	})

	p.InitPrimary()

	require.NotPanics(t, func() {
		p.InitSecondary()
	})
}

func TestLS1043AColdBoot(t *testing.T) {
	bus := &mmio.Mem{}
	mmu := &mmio.Windows{}

	p := LS1043A(bus, mmu)

	for _, d := range p.Devices() {
		mmu.Add(d.Area, d.Base, d.Size)
	}

	mmu.Add(mmio.Secure, p.GIC.Base, 0x40000)
	bus.Write8(p.DUART1.Base+uart.ULSR, uart.ULSR_THRE)

	// rev 1.1 silicon with the alignment address bit clear selects
	// the 64KB aligned register blocks
	mmio.BE32{Bus: bus, Addr: p.DCFG.Base + gic.DCFG_SVR}.Write(0x87920011)
	mmio.BE32{Bus: bus, Addr: p.SCFGBase + gic.SCFG_GIC400_ALIGN}.Write(0)

	p.InitPrimary()

	require.Equal(t, p.GIC.Base+gic.GICD_64K_OFFSET, p.GIC.Distributor())
	require.Equal(t, p.GIC.Base+gic.GICC_64K_OFFSET, p.GIC.CPU())

	// firmware coordinated power management: cpu-on performs the
	// per-core bring-up, the other transitions delegate to firmware
	h := p.Handlers()

	require.NoError(t, h.CPUOn(boot.Call{A1: 1}))
	require.NoError(t, h.CPUOff(boot.Call{}))
	require.NoError(t, h.CPUSuspend(boot.Call{}))
	require.NoError(t, h.CPUResume(boot.Call{}))
	require.NoError(t, h.SystemOff(boot.Call{}))
	require.NoError(t, h.SystemReset(boot.Call{}))
}
