package gfx

import "unsafe"

// Payload is a pending buffer upload: either Data or Length. A nil Payload
// uploads nothing.
type Payload interface {
	payload()
}

// Data uploads raw bytes.
type Data []byte

// Length reserves a number of bytes without initializing them.
type Length int

func (Data) payload()   {}
func (Length) payload() {}

// Float32s reinterprets v as Data without copying.
func Float32s(v []float32) Data {
	if len(v) == 0 {
		return Data{}
	}
	return Data(unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4))
}

// Int32s reinterprets v as Data without copying.
func Int32s(v []int32) Data {
	if len(v) == 0 {
		return Data{}
	}
	return Data(unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4))
}

// Uint32s reinterprets v as Data without copying.
func Uint32s(v []uint32) Data {
	if len(v) == 0 {
		return Data{}
	}
	return Data(unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4))
}

// Uint16s reinterprets v as Data without copying.
func Uint16s(v []uint16) Data {
	if len(v) == 0 {
		return Data{}
	}
	return Data(unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*2))
}
