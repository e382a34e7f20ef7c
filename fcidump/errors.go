// SPDX-License-Identifier: MIT

package fcidump

import "errors"

var (
	// ErrParse indicates input that does not follow the FCIDump format.
	ErrParse = errors.New("fcidump: malformed input")

	// ErrIO wraps failures of the underlying reader or file.
	ErrIO = errors.New("fcidump: i/o failure")

	// ErrInvalid indicates an FCIDump whose tables disagree with Norb.
	ErrInvalid = errors.New("fcidump: inconsistent integral tables")
)
