package parasail

import "unsafe"

// Mirrors of the fixed C struct layouts exposed by libparasail. Field order
// and sizes must match the native definitions exactly; the handles in this
// package only ever read these through pointers returned by the library.

type cResult struct {
	score    int32
	endQuery int32
	endRef   int32
	flag     int32
	extra    unsafe.Pointer
}

type cMatrix struct {
	name       *byte
	matrix     *int32
	mapper     *int32
	size       int32
	max        int32
	min        int32
	userMatrix *int32
}

type cProfileData struct {
	score   unsafe.Pointer
	matches unsafe.Pointer
	similar unsafe.Pointer
}

type cProfile struct {
	s1        *byte
	s1Len     int32
	matrix    *cMatrix
	profile8  cProfileData
	profile16 cProfileData
	profile32 cProfileData
	profile64 cProfileData
	free      unsafe.Pointer
	stop      int32
}

type cCigar struct {
	seq      *uint32
	length   int32
	begQuery int32
	begRef   int32
}

// Length-prefixed string as used by the native FASTA/FASTQ parser.
type cString struct {
	l uintptr
	s *byte
}

type cSequence struct {
	name    cString
	comment cString
	seq     cString
	qual    cString
}

type cSequences struct {
	seqs       *cSequence
	l          uintptr
	characters uintptr
	shortest   uintptr
	longest    uintptr
	mean       float32
	stddev     float32
}

// goString copies a NUL-terminated C string into a Go string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// goStringN copies a length-prefixed native string into a Go string.
func goStringN(s cString) string {
	if s.s == nil || s.l == 0 {
		return ""
	}
	return string(unsafe.Slice(s.s, s.l))
}
