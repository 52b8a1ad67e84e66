// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// NXP Layerscape DUART (16550 compatible) driver
//
// Supported SoCs:
//   - LS1021A - Reference Manual - Chapter 25: DUART
//
// The DUART registers are byte wide, no swapping applies.
package uart

import (
	"github.com/usbarmory/GoTEE-layerscape/mmio"
)

// DUART registers
const (
	UTHR = 0x00 // transmitter holding
	URBR = 0x00 // receiver buffer
	UDLB = 0x00 // divisor latch low
	UIER = 0x01 // interrupt enable
	UDMB = 0x01 // divisor latch high
	UFCR = 0x02 // FIFO control
	ULCR = 0x03 // line control
	ULSR = 0x05 // line status

	UFCR_FEN   = 1 << 0
	UFCR_RXFR  = 1 << 1
	UFCR_TXFR  = 1 << 2
	ULCR_WLS_8 = 0x03
	ULCR_DLAB  = 1 << 7
	ULSR_DR    = 1 << 0
	ULSR_THRE  = 1 << 5
)

// UART represents a DUART port instance.
type UART struct {
	// Base register
	Base uint
	// Clock is the input clock in Hz.
	Clock uint32
	// Baud is the line rate.
	Baud uint32
	// Bus controls register access
	Bus mmio.Bus
}

func (hw *UART) read(off uint) uint8 {
	return hw.Bus.Read8(hw.Base + off)
}

func (hw *UART) write(off uint, val uint8) {
	hw.Bus.Write8(hw.Base+off, val)
}

// Init programs an 8N1 line at the configured rate. It is meant to be
// invoked once, at boot, before the port is registered as console.
func (hw *UART) Init() {
	if hw.Base == 0 || hw.Bus == nil || hw.Baud == 0 {
		panic("invalid UART instance")
	}

	div := hw.Clock / (16 * hw.Baud)

	// mask interrupts
	hw.write(UIER, 0x00)

	// set line rate
	hw.write(ULCR, ULCR_DLAB)
	hw.write(UDLB, uint8(div))
	hw.write(UDMB, uint8(div>>8))

	// 8N1
	hw.write(ULCR, ULCR_WLS_8)

	// enable and reset FIFOs
	hw.write(UFCR, UFCR_FEN|UFCR_RXFR|UFCR_TXFR)
}

// Tx transmits a single character.
func (hw *UART) Tx(c byte) {
	for hw.read(ULSR)&ULSR_THRE == 0 {
		// wait for transmitter hold
	}

	hw.write(UTHR, c)
}

// Rx receives a single character, blocking until one is available.
func (hw *UART) Rx() byte {
	for hw.read(ULSR)&ULSR_DR == 0 {
		// wait for data
	}

	return hw.read(URBR)
}

// Write transmits the argument buffer.
func (hw *UART) Write(buf []byte) (n int, err error) {
	for _, c := range buf {
		hw.Tx(c)
	}

	return len(buf), nil
}

// Read receives a single character in the argument buffer, blocking
// until one is available.
func (hw *UART) Read(buf []byte) (n int, err error) {
	if len(buf) == 0 {
		return
	}

	buf[0] = hw.Rx()

	return 1, nil
}
