// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package csu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

const testBase = 0x01510000

// orderBus records every 32-bit write to verify the grant, restrict,
// lock sequence.
type orderBus struct {
	mmio.Mem

	writes []uint32
}

func (b *orderBus) Write32(va uint, val uint32) {
	b.writes = append(b.writes, val)
	b.Mem.Write32(va, val)
}

func TestInitPolicy(t *testing.T) {
	hw := &CSU{
		Base: testBase,
		Bus:  &mmio.Mem{},
	}

	hw.Init()

	for off := uint(CSL_START); off != CSL_END; off += 4 {
		val := hw.Peek(off)

		require.Equal(t, uint32(SETTING_LOCK), val&SETTING_LOCK,
			"CSL register %#x is not locked", off)

		switch off {
		case CSL30, CSL37:
			require.Equal(t, uint32(ACCESS_SEC_ONLY|SETTING_LOCK), val)
		default:
			require.Equal(t, uint32(ACCESS_ALL|SETTING_LOCK), val)
		}
	}
}

func TestInitOrder(t *testing.T) {
	bus := &orderBus{}

	hw := &CSU{
		Base: testBase,
		Bus:  bus,
	}

	hw.Init()

	regs := (CSL_END - CSL_START) / 4
	require.Len(t, bus.writes, 2*regs+2)

	// the final pass over the range must be the one setting the lock,
	// values transit the bus byte-swapped
	for _, val := range bus.writes[regs+2:] {
		require.NotZero(t, val&0x00010001, "write %#x lacks lock bit", val)
	}
}

func TestInitInvalidInstance(t *testing.T) {
	require.Panics(t, func() {
		hw := &CSU{}
		hw.Init()
	})
}
