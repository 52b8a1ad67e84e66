// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package boot defines the table of entry points the secure monitor
// invokes to hand control to the trusted OS.
package boot

// Call captures the argument registers of a trapped monitor call.
type Call struct {
	// ID is the function identifier.
	ID uint32
	// A1, A2, A3 are the call arguments.
	A1, A2, A3 uint
}

// Handler services a monitor call routed to the trusted OS.
type Handler func(c Call) error

// Handlers is the monitor call dispatch table, built once at
// configuration time and never mutated.
type Handlers struct {
	// synchronous call entries
	FastCall Handler
	StdCall  Handler

	// Interrupt services interrupts trapped by the monitor, there is
	// no legitimate unmasked NonSecure interrupt path for the trusted
	// OS, the entry is always fatal.
	Interrupt Handler

	// power state transition entries
	CPUOn       Handler
	CPUOff      Handler
	CPUSuspend  Handler
	CPUResume   Handler
	SystemOff   Handler
	SystemReset Handler
}

// Config selects the dispatch table variant.
type Config struct {
	// FastCall services synchronous fast monitor calls.
	FastCall Handler
	// StdCall services synchronous standard monitor calls.
	StdCall Handler

	// FirmwarePower indicates that cooperative power management
	// firmware coordinates CPU state transitions. When false any
	// power transition request is an unrecoverable integration error.
	FirmwarePower bool

	// CPUOn brings up a secondary core, it applies only under
	// FirmwarePower.
	CPUOn Handler
}

func pmNothing(_ Call) error {
	return nil
}

func fatal(msg string) Handler {
	return func(_ Call) error {
		panic(msg)
	}
}

// Define builds the dispatch table for the argument configuration.
//
// With power management firmware available the cpu-on entry
// participates in secondary core bring-up while the remaining power
// transitions are delegated entirely to firmware, succeeding with no
// effect. Without it, every power transition entry halts the system.
func Define(cfg Config) *Handlers {
	h := &Handlers{
		FastCall:  cfg.FastCall,
		StdCall:   cfg.StdCall,
		Interrupt: fatal("unexpected interrupt"),
	}

	if cfg.FirmwarePower {
		h.CPUOn = cfg.CPUOn
		h.CPUOff = pmNothing
		h.CPUSuspend = pmNothing
		h.CPUResume = pmNothing
		h.SystemOff = pmNothing
		h.SystemReset = pmNothing
	} else {
		h.CPUOn = fatal("unexpected cpu-on request")
		h.CPUOff = fatal("unexpected cpu-off request")
		h.CPUSuspend = fatal("unexpected cpu-suspend request")
		h.CPUResume = fatal("unexpected cpu-resume request")
		h.SystemOff = fatal("unexpected system-off request")
		h.SystemReset = fatal("unexpected system-reset request")
	}

	return h
}
