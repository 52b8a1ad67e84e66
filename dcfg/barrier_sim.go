// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tamago || !arm
// +build !tamago !arm

package dcfg

func dsb() {}
func sev() {}
