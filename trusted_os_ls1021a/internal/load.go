// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package lstee

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/usbarmory/tamago/arm"

	"github.com/usbarmory/GoTEE/monitor"

	"github.com/usbarmory/armory-boot/exec"

	"github.com/usbarmory/GoTEE-layerscape/mem"
)

// OS is the Normal World kernel ELF image, provided by the build glue
// of the board integration.
var OS []byte

// loadNormalWorld loads the Normal World kernel.
func loadNormalWorld() (os *monitor.ExecCtx, err error) {
	if len(OS) == 0 {
		return nil, errors.New("missing Normal World kernel image")
	}

	image := &exec.ELFImage{
		Region: mem.NonSecureRegion,
		ELF:    OS,
	}

	if err = image.Load(); err != nil {
		return
	}

	if os, err = monitor.Load(image.Entry(), image.Region, false); err != nil {
		return nil, fmt.Errorf("SM could not load kernel, %v", err)
	}

	log.Printf("SM loaded kernel addr:%#x entry:%#x size:%d", os.Memory.Start, os.R15, len(OS))

	// set stack pointer to the end of available memory
	os.R13 = mem.NonSecureStart + mem.NonSecureSize

	// route trapped monitor calls through the dispatch table
	os.Handler = Handler

	return
}

// NormalWorld loads and runs the Normal World kernel, returning once
// its execution context stops.
func NormalWorld() (err error) {
	os, err := loadNormalWorld()

	if err != nil {
		return
	}

	log.Printf("SM launching kernel")
	run(os, nil)

	return
}

func run(ctx *monitor.ExecCtx, wg *sync.WaitGroup) {
	mode := arm.ModeName(int(ctx.SPSR) & 0x1f)

	log.Printf("SM starting mode:%s ns:%v sp:%#.8x pc:%#.8x", mode, ctx.NonSecure(), ctx.R13, ctx.R15)

	err := ctx.Run()

	if wg != nil {
		wg.Done()
	}

	log.Printf("SM stopped mode:%s ns:%v sp:%#.8x lr:%#.8x pc:%#.8x err:%v", mode, ctx.NonSecure(), ctx.R13, ctx.R14, ctx.R15, err)
}
