package audiosink

import "unsafe"

// float32SliceToBytes reinterprets a []float32 as its little-endian byte
// representation without copying element-by-element, matching the
// teacher's OtoPlayer.Read unsafe-cast pattern.
func float32SliceToBytes(s []float32) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*4)
}
