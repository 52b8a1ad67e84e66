// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/internal"
)

func init() {
	Add(Cmd{
		Name: "gic",
		Help: "show interrupt controller register blocks",
		Fn:   gicCmd,
	})

	Add(Cmd{
		Name:    "irq",
		Args:    1,
		Pattern: regexp.MustCompile(`^irq (\d+)$`),
		Syntax:  "<id>",
		Help:    "forward an interrupt source to the CPU interface",
		Fn:      irqCmd,
	})
}

func gicCmd(_ *term.Terminal, _ []string) (res string, err error) {
	hw := lstee.Platform.GIC

	return fmt.Sprintf("GICD %#.8x\nGICC %#.8x", hw.Distributor(), hw.CPU()), nil
}

func irqCmd(_ *term.Terminal, arg []string) (res string, err error) {
	id, err := strconv.ParseUint(arg[0], 10, 10)

	if err != nil {
		return "", fmt.Errorf("invalid interrupt source, %v", err)
	}

	lstee.Platform.GIC.EnableInterrupt(int(id))

	return fmt.Sprintf("enabled interrupt source %d", id), nil
}
