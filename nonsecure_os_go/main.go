// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"log"
	"math/rand"
	"os"
	"runtime"
	_ "unsafe"

	"github.com/usbarmory/tamago/arm"

	"github.com/usbarmory/GoTEE-layerscape/mem"
)

//go:linkname ramStart runtime.ramStart
var ramStart uint32 = mem.NonSecureStart

//go:linkname ramSize runtime.ramSize
var ramSize uint32 = mem.NonSecureSize

var ARM = &arm.CPU{}

//go:linkname hwinit runtime.hwinit
func hwinit() {
	ARM.Init()
	ARM.EnableVFP()
	ARM.InitMMU()
	ARM.CacheEnable()

	// CNTFRQ is programmed by the boot ROM
	ARM.InitGenericTimers(0, 0)
}

//go:linkname printk runtime.printk
func printk(c byte) {
	// monitor call to request logs on the Secure World console
	printSecure(c)
}

//go:linkname initRNG runtime.initRNG
func initRNG() {
	// the demo kernel has no entropy source
}

//go:linkname getRandomData runtime.getRandomData
func getRandomData(b []byte) {
	rand.Read(b)
}

func init() {
	log.SetFlags(log.Ltime)
	log.SetOutput(os.Stdout)
}

func main() {
	log.Printf("%s/%s (%s) • system/supervisor (NonSecure World)", runtime.GOOS, runtime.GOARCH, runtime.Version())

	// yield back to the security monitor
	log.Printf("supervisor is about to yield back")
	exit()

	// this should be unreachable
	log.Printf("supervisor says goodbye")
}
