// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping; sentinels are never
//     stringified with parameters at definition site.
//   - Constructors never panic at runtime; option constructors may panic on
//     programmer error (nil function/source), as documented in options.go.
//   - Out-of-range parameters are NOT errors here: the clamp policy in
//     validators.go absorbs them (see doc.go).
package builder

import "errors"

// ErrConstructFailed indicates a programmer-level construction defect:
// a nil Constructor handed to BuildGraph, or a nil target graph handed to
// a thin Build* helper.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the call site */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
