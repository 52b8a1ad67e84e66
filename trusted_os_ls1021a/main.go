// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/tamago/dma"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-layerscape/mem"
	"github.com/usbarmory/GoTEE-layerscape/plat"
	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/cmd"
	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/internal"
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = mem.SecureStart

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = mem.SecureSize

//go:linkname printk runtime.printk
func printk(c byte) {
	if plat.Console != nil {
		plat.Console.Tx(c)
	}
}

var banner = fmt.Sprintf("%s/%s (%s) • TEE security monitor (Secure World system/monitor)",
	runtime.GOOS, runtime.GOARCH, runtime.Version())

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)

	// Keep DMA buffers inside the Secure World region to prevent
	// NonSecure access.
	dma.Init(mem.SecureDMAStart, mem.SecureDMASize)
	mem.Init()
}

// console serves the DUART1 debug console.
func console() {
	t := term.NewTerminal(plat.Console, "")
	t.SetPrompt(string(t.Escape.Red) + "> " + string(t.Escape.Reset))

	lstee.Console = t

	fmt.Fprintf(t, "%s\n\ntype `help` for a list of commands\n", banner)

	for {
		s, err := t.ReadLine()

		if err != nil {
			log.Printf("SM console error, %v", err)
			continue
		}

		if err = cmd.Handle(t, s); err != nil {
			fmt.Fprintf(t, "command error, %v\n", err)
		}
	}
}

func main() {
	defer log.Printf("SM says goodbye")

	lstee.Init()

	log.Printf("SM %s", banner)

	go console()

	if err := lstee.NormalWorld(); err != nil {
		log.Fatalf("SM could not launch kernel, %v", err)
	}
}
