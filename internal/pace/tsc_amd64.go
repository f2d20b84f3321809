// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package pace

// rdtsc reads the CPU Time Stamp Counter.
// Implemented in tsc_amd64.s
func rdtsc() uint64

// Cycles returns the current Time Stamp Counter value.
func Cycles() uint64 {
	return rdtsc()
}

// Hardware reports whether Cycles reads a hardware cycle counter.
const Hardware = true
