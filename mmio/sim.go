// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

import (
	"sync"
)

// Mem is a sparse memory backed Bus, used when running under emulation
// and in tests.
type Mem struct {
	sync.Mutex

	words map[uint]uint32
	bytes map[uint]uint8
}

func (m *Mem) init() {
	if m.words == nil {
		m.words = make(map[uint]uint32)
		m.bytes = make(map[uint]uint8)
	}
}

func (m *Mem) Read32(va uint) uint32 {
	m.Lock()
	defer m.Unlock()

	m.init()

	return m.words[va]
}

func (m *Mem) Write32(va uint, val uint32) {
	m.Lock()
	defer m.Unlock()

	m.init()
	m.words[va] = val
}

func (m *Mem) Read8(va uint) uint8 {
	m.Lock()
	defer m.Unlock()

	m.init()

	return m.bytes[va]
}

func (m *Mem) Write8(va uint, val uint8) {
	m.Lock()
	defer m.Unlock()

	m.init()
	m.bytes[va] = val
}

type window struct {
	area Area
	pa   uint
	size int
}

// Windows is a Mapper backed by a table of declared device windows,
// translating identically within them. It doubles as the emulated MMU
// collaborator: Map extends the table, honoring on-demand mapping
// requests, unless Fixed is set.
type Windows struct {
	sync.Mutex

	// Fixed inhibits on-demand mappings.
	Fixed bool

	windows []window
}

// Add declares a device window.
func (m *Windows) Add(area Area, pa uint, size int) {
	m.Lock()
	defer m.Unlock()

	m.windows = append(m.windows, window{area, pa, size})
}

func (m *Windows) Translate(area Area, pa uint) uint {
	m.Lock()
	defer m.Unlock()

	for _, w := range m.windows {
		if w.area == area && pa >= w.pa && pa < w.pa+uint(w.size) {
			return pa
		}
	}

	return 0
}

func (m *Windows) Map(area Area, pa uint, size int) bool {
	if m.Fixed {
		return false
	}

	m.Add(area, pa, size)

	return true
}
