// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-layerscape/csu"
	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/internal"
)

func init() {
	Add(Cmd{
		Name: "csl",
		Help: "show config security levels (CSL)",
		Fn:   cslCmd,
	})
}

func cslCmd(_ *term.Terminal, _ []string) (res string, err error) {
	hw := lstee.Platform.CSU

	if hw == nil {
		return "", errors.New("no access control unit on this SoC")
	}

	var buf bytes.Buffer

	for off := uint(csu.CSL_START); off != csu.CSL_END; off += 4 {
		val := hw.Peek(off)

		locked := " "

		if val&csu.SETTING_LOCK == csu.SETTING_LOCK {
			locked = "L"
		}

		fmt.Fprintf(&buf, "CSL%#.2x %s %#.8x\n", off, locked, val)
	}

	return buf.String(), nil
}
