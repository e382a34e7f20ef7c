// SPDX-License-Identifier: MIT

package mappers

import "errors"

// ErrOutOfRange indicates a mode index that the target basis cannot hold:
// a fermionic mode ≥ numQubits in JordanWigner, or a mode whose Majorana
// pair index overflows uint32.
var ErrOutOfRange = errors.New("mappers: mode index out of range")
