// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package gic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

const (
	testBase = 0x01400000
	testDCFG = 0x01ee0000
	testSCFG = 0x01570000
)

func testMapper(t *testing.T) *mmio.Windows {
	t.Helper()

	mmu := &mmio.Windows{}
	mmu.Add(mmio.Secure, testBase, 0x40000)

	return mmu
}

func TestResolveAligned(t *testing.T) {
	for _, tt := range []struct {
		name     string
		rev      uint32
		align    uint32
		gicc     uint
		gicd     uint
	}{
		{"rev1.0", 0x10, 0, testBase + GICC_4K_OFFSET, testBase + GICD_4K_OFFSET},
		{"rev2.0", 0x20, 0, testBase + GICC_4K_OFFSET, testBase + GICD_4K_OFFSET},
		{"rev1.1 addr bit set", 0x11, 1 << GIC_ADDR_BIT, testBase + GICC_4K_OFFSET, testBase + GICD_4K_OFFSET},
		{"rev1.1 addr bit clear", 0x11, 0, testBase + GICC_64K_OFFSET, testBase + GICD_64K_OFFSET},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mem := &mmio.Mem{}
			mmu := testMapper(t)

			mmio.BE32{Bus: mem, Addr: testDCFG + DCFG_SVR}.Write(0x87000000 | tt.rev)
			mmio.BE32{Bus: mem, Addr: testSCFG + SCFG_GIC400_ALIGN}.Write(tt.align)

			gicc, gicd := ResolveAligned(mem, mmu, testBase, testDCFG, testSCFG)

			require.Equal(t, tt.gicc, gicc)
			require.Equal(t, tt.gicd, gicd)
		})
	}
}

func TestResolveAlignedDemandMapping(t *testing.T) {
	mem := &mmio.Mem{}
	mmu := testMapper(t)

	mmio.BE32{Bus: mem, Addr: testDCFG + DCFG_SVR}.Write(0x87000011)
	mmio.BE32{Bus: mem, Addr: testSCFG + SCFG_GIC400_ALIGN}.Write(1 << GIC_ADDR_BIT)

	// neither the SVR nor the alignment register window is premapped,
	// both must be resolved through a single on-demand mapping each
	gicc, gicd := ResolveAligned(mem, mmu, testBase, testDCFG, testSCFG)

	require.Equal(t, uint(testBase+GICC_4K_OFFSET), gicc)
	require.Equal(t, uint(testBase+GICD_4K_OFFSET), gicd)

	require.NotZero(t, mmu.Translate(mmio.Secure, testDCFG+DCFG_SVR))
	require.NotZero(t, mmu.Translate(mmio.Secure, testSCFG+SCFG_GIC400_ALIGN))
}

func TestResolveAlignedMappingFailure(t *testing.T) {
	mmu := testMapper(t)
	mmu.Fixed = true

	require.Panics(t, func() {
		ResolveAligned(&mmio.Mem{}, mmu, testBase, testDCFG, testSCFG)
	})
}

func TestResolveFixed(t *testing.T) {
	mmu := testMapper(t)

	gicc, gicd := Resolve(mmu, testBase, GICC_4K_OFFSET, GICD_4K_OFFSET)
	require.Equal(t, uint(testBase+GICC_4K_OFFSET), gicc)
	require.Equal(t, uint(testBase+GICD_4K_OFFSET), gicd)

	// no separate CPU interface register block
	gicc, gicd = Resolve(mmu, testBase, 0, GICD_4K_OFFSET)
	require.Zero(t, gicc)
	require.Equal(t, uint(testBase+GICD_4K_OFFSET), gicd)
}

func TestResolveUnmappedCPUInterface(t *testing.T) {
	require.Panics(t, func() {
		Resolve(&mmio.Windows{Fixed: true}, testBase, GICC_4K_OFFSET, GICD_4K_OFFSET)
	})
}
