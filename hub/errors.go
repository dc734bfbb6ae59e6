// SPDX-License-Identifier: MIT

package hub

import "errors"

var (
	// ErrOutOfBounds indicates a request outside the configured Limits.
	ErrOutOfBounds = errors.New("hub: request out of bounds")

	// ErrUnknownRequest indicates an unsupported Request: nil, or a pointer
	// to one of the request structs.
	ErrUnknownRequest = errors.New("hub: unknown request")

	// ErrUnknownConstant indicates a symbol missing from the constants table.
	ErrUnknownConstant = errors.New("hub: unknown constant")

	// ErrUnknownMode indicates a mode name outside the known set.
	ErrUnknownMode = errors.New("hub: unknown mode")
)
