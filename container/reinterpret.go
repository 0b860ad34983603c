package container

import "unsafe"

func sizeOf[T Numeric](zero T) uintptr {
	return unsafe.Sizeof(zero)
}

// reinterpretSlice reinterprets a []From chunk as a []To chunk of the
// same byte length. The caller (GetAttributeForceType) has already
// checked that sizeof(From) == sizeof(To).
func reinterpretSlice[From, To Numeric](s []From) []To {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*To)(unsafe.Pointer(&s[0])), len(s))
}
