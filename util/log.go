// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package util provides buffered console logging for interleaved
// Secure and NonSecure World output.
package util

import (
	"bytes"
	"os"

	"golang.org/x/term"
)

const outputLimit = 1024
const flushChr = 0x0a // \n

var secureOutput bytes.Buffer
var nonSecureOutput bytes.Buffer

func worldBuffer(secure bool) *bytes.Buffer {
	if secure {
		return &secureOutput
	}

	return &nonSecureOutput
}

// BufferedStdoutLog collects single character world-tagged output,
// flushing whole lines to standard output to avoid interleaving
// between execution contexts.
func BufferedStdoutLog(c byte, secure bool) {
	buf := worldBuffer(secure)
	buf.WriteByte(c)

	if c == flushChr || buf.Len() > outputLimit {
		os.Stdout.Write(buf.Bytes())
		buf.Reset()
	}
}

// BufferedTermLog mirrors BufferedStdoutLog on the argument terminal,
// coloring Secure World output green and NonSecure World output red.
func BufferedTermLog(c byte, secure bool, t *term.Terminal) {
	buf := worldBuffer(secure)
	color := t.Escape.Red

	if secure {
		color = t.Escape.Green
	}

	buf.WriteByte(c)

	if c == flushChr || buf.Len() > outputLimit {
		t.Write(color)
		t.Write(buf.Bytes())
		t.Write(t.Escape.Reset)

		buf.Reset()
	}
}
