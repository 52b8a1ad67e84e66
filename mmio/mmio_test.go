// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBE32(t *testing.T) {
	mem := &Mem{}
	reg := BE32{Bus: mem, Addr: 0x01ee00a4}

	reg.Write(0x87654321)
	require.Equal(t, uint32(0x21436587), mem.Read32(0x01ee00a4))
	require.Equal(t, uint32(0x87654321), reg.Read())

	reg.Set(0x08000800)
	require.Equal(t, uint32(0x8f654b21), reg.Read())
}

func TestLE32(t *testing.T) {
	mem := &Mem{}
	reg := LE32{Bus: mem, Addr: 0x01401000}

	reg.Write(0xcafe0000)
	require.Equal(t, uint32(0xcafe0000), mem.Read32(0x01401000))

	reg.Set(0x3)
	reg.Clear(0x2)
	require.Equal(t, uint32(0xcafe0001), reg.Read())
}

func TestWindows(t *testing.T) {
	mmu := &Windows{}

	require.Zero(t, mmu.Translate(Secure, 0x01ee00a4))

	require.True(t, mmu.Map(Secure, 0x01ee00a4, 4))
	require.Equal(t, uint(0x01ee00a4), mmu.Translate(Secure, 0x01ee00a4))

	// security domains do not alias
	require.Zero(t, mmu.Translate(NonSecure, 0x01ee00a4))

	mmu.Fixed = true
	require.False(t, mmu.Map(Secure, 0x01570188, 4))
}
