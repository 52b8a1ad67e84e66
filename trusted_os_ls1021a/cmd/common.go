// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"fmt"
	"runtime/debug"
	"runtime/pprof"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/internal"
)

// The console runs on a permanent serial line, there is no session to
// close, so no exit command is registered.
func init() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn:   helpCmd,
	})

	Add(Cmd{
		Name: "info",
		Help: "show SoC identification",
		Fn:   infoCmd,
	})

	Add(Cmd{
		Name: "stack",
		Help: "stack trace of current goroutine",
		Fn:   stackCmd,
	})

	Add(Cmd{
		Name: "stackall",
		Help: "stack trace of all goroutines",
		Fn:   stackallCmd,
	})
}

func helpCmd(term *term.Terminal, _ []string) (string, error) {
	return Help(term), nil
}

func infoCmd(_ *term.Terminal, _ []string) (string, error) {
	p := lstee.Platform

	return fmt.Sprintf("%s rev %#.2x (SVR %#.8x)", p.Name, p.DCFG.Revision(), p.DCFG.Version()), nil
}

func stackCmd(_ *term.Terminal, _ []string) (string, error) {
	return string(debug.Stack()), nil
}

func stackallCmd(_ *term.Terminal, _ []string) (string, error) {
	buf := new(bytes.Buffer)
	pprof.Lookup("goroutine").WriteTo(buf, 1)

	return buf.String(), nil
}
