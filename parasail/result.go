package parasail

import (
	"fmt"
	"unsafe"
)

// Result wraps one native alignment result. Its shape depends on the
// configuration that produced it: accessors beyond Score, EndQuery, EndRef
// and Saturated are gated on the corresponding native capability flag and
// return a CapabilityError when the configuration did not request that
// output. The query/reference lengths are captured at dispatch time because
// the native struct does not record them; they bound every array view.
type Result struct {
	ptr      uintptr
	lib      *libTable
	lenQuery int
	lenRef   int

	// Retained for lazy cigar construction; not recoverable from the
	// native struct.
	query  string
	ref    string
	matrix *Matrix

	cigar *Cigar
}

func newResult(l *libTable, p uintptr, query, ref string, matrix *Matrix) (*Result, error) {
	if p == 0 {
		return nil, fmt.Errorf("parasail: alignment returned no result")
	}
	return &Result{
		ptr:      p,
		lib:      l,
		lenQuery: len(query),
		lenRef:   len(ref),
		query:    query,
		ref:      ref,
		matrix:   matrix,
	}, nil
}

// Score returns the alignment score. For 8- and 16-bit lane widths, check
// Saturated before trusting it.
func (r *Result) Score() int {
	return int(r.lib.resultGetScore(r.ptr))
}

// EndQuery returns the alignment end position in the query.
func (r *Result) EndQuery() int {
	return int(r.lib.resultGetEndQuery(r.ptr))
}

// EndRef returns the alignment end position in the reference.
func (r *Result) EndRef() int {
	return int(r.lib.resultGetEndRef(r.ptr))
}

// Saturated reports whether the score overflowed the fixed-width
// accumulator. Always available, whatever the configuration.
func (r *Result) Saturated() bool {
	return r.lib.resultIsSaturated(r.ptr) != 0
}

func (r *Result) statsErr() error {
	if r.lib.resultIsStats(r.ptr) == 0 {
		return &CapabilityError{Cap: "stats"}
	}
	return nil
}

// Matches returns the number of exactly matching positions.
func (r *Result) Matches() (int, error) {
	if err := r.statsErr(); err != nil {
		return 0, err
	}
	return int(r.lib.resultGetMatches(r.ptr)), nil
}

// Similar returns the number of positions with a positive substitution
// score.
func (r *Result) Similar() (int, error) {
	if err := r.statsErr(); err != nil {
		return 0, err
	}
	return int(r.lib.resultGetSimilar(r.ptr)), nil
}

// Length returns the alignment length.
func (r *Result) Length() (int, error) {
	if err := r.statsErr(); err != nil {
		return 0, err
	}
	return int(r.lib.resultGetLength(r.ptr)), nil
}

// Table is a bounds-checked view over one per-cell output table, with one
// row per query position and one column per reference position.
type Table struct {
	rows, cols int
	cells      []int
}

func (t *Table) Dims() (rows, cols int) { return t.rows, t.cols }

func (t *Table) At(row, col int) int {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		panic(&IndexError{Index: row*t.cols + col, Len: len(t.cells)})
	}
	return t.cells[row*t.cols+col]
}

// table copies a native int array of lenQuery*lenRef cells. The native
// pointer carries no length; the captured sequence lengths bound the view.
func (r *Result) table(get func(uintptr) uintptr, capName string) (*Table, error) {
	p := get(r.ptr)
	if p == 0 {
		return nil, &CapabilityError{Cap: capName}
	}
	n := r.lenQuery * r.lenRef
	src := unsafe.Slice((*int32)(unsafe.Pointer(p)), n)
	cells := make([]int, n)
	for i, v := range src {
		cells[i] = int(v)
	}
	return &Table{rows: r.lenQuery, cols: r.lenRef, cells: cells}, nil
}

func (r *Result) vector(get func(uintptr) uintptr, n int, capName string) ([]int, error) {
	p := get(r.ptr)
	if p == 0 {
		return nil, &CapabilityError{Cap: capName}
	}
	src := unsafe.Slice((*int32)(unsafe.Pointer(p)), n)
	out := make([]int, n)
	for i, v := range src {
		out[i] = int(v)
	}
	return out, nil
}

func (r *Result) tableErr() error {
	if r.lib.resultIsTable(r.ptr) == 0 && r.lib.resultIsStatsTable(r.ptr) == 0 {
		return &CapabilityError{Cap: "table"}
	}
	return nil
}

func (r *Result) statsTableErr() error {
	if r.lib.resultIsStatsTable(r.ptr) == 0 {
		return &CapabilityError{Cap: "table"}
	}
	return nil
}

func (r *Result) rowcolErr() error {
	if r.lib.resultIsRowcol(r.ptr) == 0 {
		return &CapabilityError{Cap: "rowcol"}
	}
	return nil
}

// ScoreTable returns the full dynamic-programming score table.
func (r *Result) ScoreTable() (*Table, error) {
	if err := r.tableErr(); err != nil {
		return nil, err
	}
	return r.table(r.lib.resultGetScoreTable, "table")
}

func (r *Result) MatchesTable() (*Table, error) {
	if err := r.statsTableErr(); err != nil {
		return nil, err
	}
	return r.table(r.lib.resultGetMatchesTable, "table")
}

func (r *Result) SimilarTable() (*Table, error) {
	if err := r.statsTableErr(); err != nil {
		return nil, err
	}
	return r.table(r.lib.resultGetSimilarTable, "table")
}

func (r *Result) LengthTable() (*Table, error) {
	if err := r.statsTableErr(); err != nil {
		return nil, err
	}
	return r.table(r.lib.resultGetLengthTable, "table")
}

// ScoreRow returns the last row of the score table, one cell per reference
// position.
func (r *Result) ScoreRow() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetScoreRow, r.lenRef, "rowcol")
}

func (r *Result) MatchesRow() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetMatchesRow, r.lenRef, "rowcol")
}

func (r *Result) SimilarRow() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetSimilarRow, r.lenRef, "rowcol")
}

func (r *Result) LengthRow() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetLengthRow, r.lenRef, "rowcol")
}

// ScoreCol returns the last column of the score table, one cell per query
// position.
func (r *Result) ScoreCol() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetScoreCol, r.lenQuery, "rowcol")
}

func (r *Result) MatchesCol() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetMatchesCol, r.lenQuery, "rowcol")
}

func (r *Result) SimilarCol() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetSimilarCol, r.lenQuery, "rowcol")
}

func (r *Result) LengthCol() ([]int, error) {
	if err := r.rowcolErr(); err != nil {
		return nil, err
	}
	return r.vector(r.lib.resultGetLengthCol, r.lenQuery, "rowcol")
}

// Cigar decodes the traceback. Only available for trace configurations. The
// native cigar is built at most once per Result and cached; it is released
// together with the Result.
func (r *Result) Cigar() (*Cigar, error) {
	if r.lib.resultIsTrace(r.ptr) == 0 {
		return nil, &CapabilityError{Cap: "trace"}
	}
	if r.cigar != nil {
		return r.cigar, nil
	}
	p := r.lib.resultGetCigar(r.ptr,
		r.query, int32(r.lenQuery),
		r.ref, int32(r.lenRef),
		r.matrix.ptr)
	if p == 0 {
		return nil, fmt.Errorf("parasail: cigar construction failed")
	}
	r.cigar = &Cigar{ptr: p, lib: r.lib}
	return r.cigar, nil
}

// Algorithm and strategy flags recorded by the native call.
func (r *Result) IsNW() bool      { return r.lib.resultIsNW(r.ptr) != 0 }
func (r *Result) IsSG() bool      { return r.lib.resultIsSG(r.ptr) != 0 }
func (r *Result) IsSW() bool      { return r.lib.resultIsSW(r.ptr) != 0 }
func (r *Result) IsScan() bool    { return r.lib.resultIsScan(r.ptr) != 0 }
func (r *Result) IsStriped() bool { return r.lib.resultIsStriped(r.ptr) != 0 }
func (r *Result) IsDiag() bool    { return r.lib.resultIsDiag(r.ptr) != 0 }
func (r *Result) IsBanded() bool  { return r.lib.resultIsBanded(r.ptr) != 0 }
func (r *Result) IsBlocked() bool { return r.lib.resultIsBlocked(r.ptr) != 0 }

// LenQuery returns the query length captured at dispatch time.
func (r *Result) LenQuery() int { return r.lenQuery }

// LenRef returns the reference length captured at dispatch time.
func (r *Result) LenRef() int { return r.lenRef }

// Close releases the native result, along with its cached cigar if one was
// built. Safe to call more than once.
func (r *Result) Close() error {
	if r.ptr == 0 {
		return nil
	}
	if r.cigar != nil {
		r.cigar.Close()
		r.cigar = nil
	}
	r.lib.resultFree(r.ptr)
	r.ptr = 0
	return nil
}
