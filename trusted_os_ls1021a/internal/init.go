// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package lstee

import (
	"fmt"

	"github.com/usbarmory/GoTEE-layerscape/boot"
	"github.com/usbarmory/GoTEE-layerscape/mmio"
	"github.com/usbarmory/GoTEE-layerscape/plat"
)

// Platform is the LS1021A Secure World platform instance, owned by the
// primary core for the lifetime of the trusted OS.
var Platform = plat.LS1021A(mmio.Phys{}, mmio.Flat{})

// Init performs primary core bring-up and publishes the monitor call
// dispatch table.
func Init() {
	Platform.FastCall = fastCall
	Platform.StdCall = stdCall

	Platform.InitPrimary()
}

// InitSecondary performs per-core bring-up on secondary cores, after
// Init completed on the primary one.
func InitSecondary() {
	Platform.InitSecondary()
}

// Synchronous call service beyond the GoTEE API is out of the platform
// layer scope, unknown function identifiers are rejected.

func fastCall(c boot.Call) error {
	return fmt.Errorf("unknown fast call %#x", c.ID)
}

func stdCall(c boot.Call) error {
	return fmt.Errorf("unknown standard call %#x", c.ID)
}
