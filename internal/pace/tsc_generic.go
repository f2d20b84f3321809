// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64

package pace

import "time"

var epoch = time.Now()

// Cycles returns monotonic nanoseconds since package initialization.
func Cycles() uint64 {
	return uint64(time.Since(epoch))
}

// Hardware reports whether Cycles reads a hardware cycle counter.
const Hardware = false
