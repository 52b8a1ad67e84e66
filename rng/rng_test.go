// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package rng

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	secret := bytes.Repeat([]byte{0x55}, 16)

	a, err := New(secret)
	require.NoError(t, err)

	b, err := New(secret)
	require.NoError(t, err)

	// same personalization secret, same stream
	buf1 := make([]byte, 32)
	buf2 := make([]byte, 32)

	a(buf1)
	b(buf2)

	require.Equal(t, buf1, buf2)
	require.NotEqual(t, make([]byte, 32), buf1)

	// consecutive reads must not repeat
	a(buf2)
	require.NotEqual(t, buf1, buf2)
}

func TestNewDistinctSecrets(t *testing.T) {
	a, err := New(bytes.Repeat([]byte{0x55}, 16))
	require.NoError(t, err)

	b, err := New(bytes.Repeat([]byte{0xaa}, 16))
	require.NoError(t, err)

	buf1 := make([]byte, 32)
	buf2 := make([]byte, 32)

	a(buf1)
	b(buf2)

	require.NotEqual(t, buf1, buf2)
}

func TestNewMissingSecret(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}
