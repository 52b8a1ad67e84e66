// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/tamago/dma"
)

// readLimit bounds a single memory display request.
const readLimit = 102400

func init() {
	Add(Cmd{
		Name:    "peek",
		Args:    2,
		Pattern: regexp.MustCompile(`^peek ([[:xdigit:]]+) (\d+)$`),
		Syntax:  "<hex offset> <size>",
		Help:    "memory display (use with caution)",
		Fn:      peekCmd,
	})

	Add(Cmd{
		Name:    "poke",
		Args:    2,
		Pattern: regexp.MustCompile(`^poke ([[:xdigit:]]+) ([[:xdigit:]]+)$`),
		Syntax:  "<hex offset> <hex value>",
		Help:    "memory write   (use with caution)",
		Fn:      pokeCmd,
	})
}

// memAccess reads size bytes at the argument physical address, or
// writes w there when passed, going through a transient DMA region to
// keep the Go runtime away from the raw pointers.
func memAccess(start uint, size int, w []byte) (b []byte) {
	mem := &dma.Region{
		Start: uint32(start),
		Size:  size,
	}
	mem.Init()

	addr, buf := mem.Reserve(size, 0)
	defer mem.Release(addr)

	if len(w) > 0 {
		copy(buf, w)
	} else {
		b = make([]byte, size)
		copy(b, buf)
	}

	return
}

func parseAddress(arg string) (uint, error) {
	addr, err := strconv.ParseUint(arg, 16, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid address, %v", err)
	}

	if addr%4 != 0 {
		return 0, fmt.Errorf("only 32-bit aligned accesses are supported")
	}

	return uint(addr), nil
}

func peekCmd(_ *term.Terminal, arg []string) (res string, err error) {
	addr, err := parseAddress(arg[0])

	if err != nil {
		return
	}

	size, err := strconv.ParseUint(arg[1], 10, 32)

	if err != nil {
		return "", fmt.Errorf("invalid size, %v", err)
	}

	if size%4 != 0 || size > readLimit {
		return "", fmt.Errorf("size must be 32-bit aligned and <= %d", readLimit)
	}

	return hex.Dump(memAccess(addr, int(size), nil)), nil
}

func pokeCmd(_ *term.Terminal, arg []string) (res string, err error) {
	addr, err := parseAddress(arg[0])

	if err != nil {
		return
	}

	val, err := strconv.ParseUint(arg[1], 16, 32)

	if err != nil {
		return "", fmt.Errorf("invalid data, %v", err)
	}

	// CCSR registers are big-endian, peripheral pokes must be issued in
	// wire order
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(val))

	memAccess(addr, 4, buf)

	return
}
