package parasail

import "fmt"

// Profile is a precomputed encoding of one query sequence against a Matrix,
// reusable across alignments against many references. The Profile keeps its
// Matrix handle referenced for its own lifetime; closing the Matrix while a
// Profile built from it is still in use is a caller error.
type Profile struct {
	ptr    uintptr
	lib    *libTable
	query  string
	matrix *Matrix
}

func newProfile(kind, query string, matrix *Matrix) (*Profile, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	if matrix == nil || matrix.ptr == 0 {
		return nil, fmt.Errorf("parasail: profile requires an open matrix")
	}
	fn := l.profileCreate[kind]
	p := fn(query, int32(len(query)), matrix.ptr)
	if p == 0 {
		return nil, fmt.Errorf("parasail: profile_create_%s failed", kind)
	}
	return &Profile{ptr: p, lib: l, query: query, matrix: matrix}, nil
}

// NewProfile builds a profile for the given lane width, with or without the
// statistics blocks. Profiles with statistics are required by the stats
// dispatch variants.
func NewProfile(query string, matrix *Matrix, width Width, stats bool) (*Profile, error) {
	var kind string
	switch width {
	case Width8, Width16, Width32, Width64, WidthSat:
		kind = width.String()
	default:
		return nil, fmt.Errorf("parasail: profile requires an explicit lane width")
	}
	if stats {
		kind = "stats_" + kind
	}
	return newProfile(kind, query, matrix)
}

func ProfileCreate8(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("8", query, matrix)
}

func ProfileCreate16(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("16", query, matrix)
}

func ProfileCreate32(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("32", query, matrix)
}

func ProfileCreate64(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("64", query, matrix)
}

func ProfileCreateSat(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("sat", query, matrix)
}

func ProfileCreateStats8(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("stats_8", query, matrix)
}

func ProfileCreateStats16(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("stats_16", query, matrix)
}

func ProfileCreateStats32(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("stats_32", query, matrix)
}

func ProfileCreateStats64(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("stats_64", query, matrix)
}

func ProfileCreateStatsSat(query string, matrix *Matrix) (*Profile, error) {
	return newProfile("stats_sat", query, matrix)
}

// Query returns the sequence the profile was built from.
func (p *Profile) Query() string { return p.query }

func (p *Profile) Length() int { return len(p.query) }

// Matrix returns the matrix the profile was built against.
func (p *Profile) Matrix() *Matrix { return p.matrix }

// Close releases the native profile. Safe to call more than once.
func (p *Profile) Close() error {
	if p.ptr == 0 {
		return nil
	}
	p.lib.profileFree(p.ptr)
	p.ptr = 0
	return nil
}
