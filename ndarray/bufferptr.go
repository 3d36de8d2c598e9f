package ndarray

import "unsafe"

// BufferPtrAt returns an unsafe.Pointer to byteAddr within the
// descriptor's buffer, validating that a full element fits. This is the
// primitive the apply engine uses to walk arbitrary byte offsets directly
// (bypassing index-mode resolution, since the apply engine's pre-flight
// validation means every address it visits is already known-valid).
func (a *Array) BufferPtrAt(byteAddr int) (unsafe.Pointer, bool) {
	return a.bytePtr(byteAddr)
}
