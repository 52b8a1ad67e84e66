// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package otp

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// simMonitor simulates the monitor SiP service, filling the transient
// buffer through its physical address like the firmware would.
func simMonitor(status int, fill byte) MonitorCall {
	return func(fn uint32, pa uint, size int) int {
		if status < 0 {
			return status
		}

		buf := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(pa))), size)

		for i := range buf {
			buf[i] = fill
		}

		return status
	}
}

func TestGetKey(t *testing.T) {
	key := make([]byte, KeySize)

	mc := func(fn uint32, pa uint, size int) int {
		require.Equal(t, uint32(HwUniqueKey), fn)
		require.Equal(t, KeySize, size)
		require.Zero(t, pa%bufferAlign)

		return simMonitor(0, 0xaa)(fn, pa, size)
	}

	require.NoError(t, GetKey(mc, key))
	require.Equal(t, bytes.Repeat([]byte{0xaa}, KeySize), key)
}

func TestGetKeySecurityFailure(t *testing.T) {
	key := bytes.Repeat([]byte{0x55}, KeySize)
	prev := append([]byte{}, key...)

	err := GetKey(simMonitor(-1, 0xaa), key)

	require.ErrorIs(t, err, ErrSecurity)

	// the destination buffer must not be touched on failure
	require.Equal(t, prev, key)
}

func TestGetKeyArguments(t *testing.T) {
	require.Error(t, GetKey(simMonitor(0, 0xaa), make([]byte, KeySize-1)))
	require.Error(t, GetKey(nil, make([]byte, KeySize)))
}

func TestCallIdentifier(t *testing.T) {
	// fast call, SMC32 convention, SiP owner, function 0xff14
	require.Equal(t, uint32(0x8200ff14), uint32(HwUniqueKey))
}
