// Package ndarray is the module root: it re-exports nothing itself, but
// documents how the five leaf packages compose into the strided, typed
// N-dimensional array core described in SPEC_FULL.md.
//
//   - dtype      - element type registry and casting tables
//   - indexmode  - ERROR/CLAMP/WRAP out-of-range policies
//   - shape      - shape/stride algebra and coordinate mapping
//   - ndarray    - the array descriptor and its typed accessors
//   - apply      - the element-wise unary apply engine
//
// A caller builds a descriptor via ndarray.New, validates it against a
// buffer via Array.IsBufferLengthCompatible, reads or writes individual
// elements via the Get/Set family, and drives element-wise computation
// across the whole view via the apply package.
package ndarray
