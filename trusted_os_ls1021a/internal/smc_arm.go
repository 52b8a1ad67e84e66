// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && arm
// +build tamago,arm

package lstee

// defined in smc_arm.s
func smc(fn uint32, a1 uint32, a2 uint32) int32

// smcCall issues a fast call to the monitor firmware (EL3), which
// retains ownership of SoC fuse access.
func smcCall(fn uint32, pa uint, size int) int {
	return int(smc(fn, uint32(pa), uint32(size)))
}
