package parasail

import "fmt"

// Align runs one pairwise alignment for the given configuration. The
// configuration is resolved to a native entry point before anything is
// marshalled; invalid combinations fail here, never inside the native
// library.
func Align(cfg Config, query, ref string, open, extend int, matrix *Matrix) (*Result, error) {
	sym, err := cfg.resolve(false)
	if err != nil {
		return nil, err
	}
	return alignSeq(sym, query, ref, open, extend, matrix)
}

// AlignProfile runs one pairwise alignment of a precomputed query Profile
// against a reference. The gap costs still travel per call; the matrix is
// implicit in the Profile.
func AlignProfile(cfg Config, profile *Profile, ref string, open, extend int) (*Result, error) {
	sym, err := cfg.resolve(true)
	if err != nil {
		return nil, err
	}
	return alignProfile(sym, profile, ref, open, extend)
}

// alignSeq is the sequence-pair calling convention. Every generated
// sequence-pair wrapper funnels through here; it threads the sequence
// lengths, bytes and matrix into the Result, which cannot recover them from
// the native struct.
func alignSeq(sym, query, ref string, open, extend int, matrix *Matrix) (*Result, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	if matrix == nil || matrix.ptr == 0 {
		return nil, fmt.Errorf("parasail: %s requires an open matrix", sym)
	}
	fn, ok := l.seqAlign[sym]
	if !ok {
		return nil, fmt.Errorf("parasail: no such alignment function %q", sym)
	}
	p := fn(query, int32(len(query)), ref, int32(len(ref)), int32(open), int32(extend), matrix.ptr)
	return newResult(l, p, query, ref, matrix)
}

// alignProfile is the profile calling convention, the only other argument
// shape in the library.
func alignProfile(sym string, profile *Profile, ref string, open, extend int) (*Result, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ptr == 0 {
		return nil, fmt.Errorf("parasail: %s requires an open profile", sym)
	}
	fn, ok := l.profileAlign[sym]
	if !ok {
		return nil, fmt.Errorf("parasail: no such alignment function %q", sym)
	}
	p := fn(profile.ptr, ref, int32(len(ref)), int32(open), int32(extend))
	return newResult(l, p, profile.query, ref, profile.matrix)
}

// NWBanded is the banded global alignment. It takes an extra bandwidth
// argument and sits outside the two-shape dispatch scheme, matching the
// native library, which implements exactly one banded kernel.
func NWBanded(query, ref string, open, extend, k int, matrix *Matrix) (*Result, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	if matrix == nil || matrix.ptr == 0 {
		return nil, fmt.Errorf("parasail: nw_banded requires an open matrix")
	}
	p := l.nwBanded(query, int32(len(query)), ref, int32(len(ref)), int32(open), int32(extend), int32(k), matrix.ptr)
	return newResult(l, p, query, ref, matrix)
}
