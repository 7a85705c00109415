// SPDX-License-Identifier: MIT
// Package: gnode/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the point of failure.

package builder

import "errors"

// ErrUnbalanced indicates EndChild was called at root level. The builder
// records the misuse and Build reports it; the declaration stack is left
// untouched.
var ErrUnbalanced = errors.New("builder: EndChild called at root level")
