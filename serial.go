// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pollq

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing channel identifier.
// Each call to New assigns the next serial value, starting at 0.
type Serial = int32

// None is the serial returned by [Poll.Wait] when no bound channel
// became ready within the timeout. It is never assigned to a channel.
const None Serial = -1

// counter is the global monotonic counter for channel serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return Serial(counter.Add(1) - 1)
}
