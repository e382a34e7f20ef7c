// SPDX-License-Identifier: MIT

package integrals

import "errors"

// ErrShape indicates an integral array whose size disagrees with the orbital count.
var ErrShape = errors.New("integrals: array size does not match orbital count")
