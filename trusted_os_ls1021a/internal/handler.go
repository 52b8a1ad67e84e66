// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package lstee

import (
	"fmt"

	"github.com/usbarmory/tamago/arm"

	"github.com/usbarmory/GoTEE/monitor"
	"github.com/usbarmory/GoTEE/syscall"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-layerscape/boot"
	"github.com/usbarmory/GoTEE-layerscape/util"
)

// Console is the debug console terminal, when remote logging is
// active.
var Console *term.Terminal

// PSCI function identifiers (SMC32 convention)
const (
	psciCPUSuspend  = 0x84000001
	psciCPUOff      = 0x84000002
	psciCPUOn       = 0x84000003
	psciSystemOff   = 0x84000008
	psciSystemReset = 0x84000009
)

// fast call function identifier bit
const fastCallFlag = 1 << 31

func call(ctx *monitor.ExecCtx) boot.Call {
	return boot.Call{
		ID: ctx.R0,
		A1: uint(ctx.R1),
		A2: uint(ctx.R2),
		A3: uint(ctx.R3),
	}
}

// Handler bridges monitor trapped calls into the platform dispatch
// table.
func Handler(ctx *monitor.ExecCtx) (err error) {
	h := Platform.Handlers()

	switch ctx.ExceptionVector {
	case arm.IRQ, arm.FIQ:
		return h.Interrupt(call(ctx))
	case arm.SUPERVISOR:
		// monitor calls fall through
	default:
		return fmt.Errorf("unhandled exception %x", ctx.ExceptionVector)
	}

	switch ctx.R0 {
	case syscall.SYS_WRITE:
		// Override write syscall to avoid interleaved logs and to
		// log simultaneously to remote terminal and serial console.
		if Console != nil {
			util.BufferedTermLog(byte(ctx.R1), !ctx.NonSecure(), Console)
		} else {
			util.BufferedStdoutLog(byte(ctx.R1), !ctx.NonSecure())
		}

		return
	case syscall.SYS_EXIT:
		// support exit syscall on both security states
		ctx.Stop()
		return
	case psciCPUSuspend:
		return h.CPUSuspend(call(ctx))
	case psciCPUOff:
		return h.CPUOff(call(ctx))
	case psciCPUOn:
		return h.CPUOn(call(ctx))
	case psciSystemOff:
		return h.SystemOff(call(ctx))
	case psciSystemReset:
		return h.SystemReset(call(ctx))
	}

	if !ctx.NonSecure() {
		return monitor.SecureHandler(ctx)
	}

	if ctx.R0&fastCallFlag != 0 {
		return h.FastCall(call(ctx))
	}

	return h.StdCall(call(ctx))
}
