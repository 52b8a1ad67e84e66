// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"golang.org/x/term"

	"github.com/usbarmory/GoTEE-layerscape/otp"
	"github.com/usbarmory/GoTEE-layerscape/trusted_os_ls1021a/internal"
)

func init() {
	Add(Cmd{
		Name: "huk",
		Help: "verify hardware unique key availability",
		Fn:   hukCmd,
	})
}

// The key value is never printed, the command only probes whether the
// monitor firmware releases it.
func hukCmd(_ *term.Terminal, _ []string) (res string, err error) {
	key := make([]byte, otp.KeySize)

	if err = lstee.SecureStorageKey(key); err != nil {
		return "", fmt.Errorf("could not obtain hardware unique key, %v", err)
	}

	for i := range key {
		key[i] = 0
	}

	return fmt.Sprintf("obtained %d bytes hardware unique key", otp.KeySize), nil
}
