package parasail

import (
	"fmt"
	"os"
	"unsafe"
)

// Matrix wraps a native substitution matrix. Built-in matrices obtained via
// MatrixLookup (or the named helpers) reference static library data and are
// not owned; matrices from MatrixCreate, MatrixFromFile and Copy own their
// native allocation and must be released with Close.
type Matrix struct {
	ptr uintptr
	lib *libTable
}

func (m *Matrix) c() *cMatrix {
	return (*cMatrix)(unsafe.Pointer(m.ptr))
}

// MatrixLookup finds a built-in matrix by name, e.g. "blosum62".
func MatrixLookup(name string) (*Matrix, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	p := l.matrixLookup(name)
	if p == 0 {
		return nil, fmt.Errorf("parasail: unknown built-in matrix %q", name)
	}
	return &Matrix{ptr: p, lib: l}, nil
}

// MatrixCreate builds a simple match/mismatch matrix over the given
// alphabet. The returned matrix is owned and must be closed.
func MatrixCreate(alphabet string, match, mismatch int) (*Matrix, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	p := l.matrixCreate(alphabet, int32(match), int32(mismatch))
	if p == 0 {
		return nil, fmt.Errorf("parasail: matrix_create failed for alphabet %q", alphabet)
	}
	return &Matrix{ptr: p, lib: l}, nil
}

// MatrixFromFile parses a scoring matrix file. The file must exist before
// the native call is made; the native parser exits the process on a missing
// file instead of returning an error.
func MatrixFromFile(path string) (*Matrix, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("parasail: cannot open matrix file: %w", err)
	}
	p := l.matrixFromFile(path)
	if p == 0 {
		return nil, fmt.Errorf("parasail: cannot parse matrix file %q", path)
	}
	return &Matrix{ptr: p, lib: l}, nil
}

// NewMatrix resolves a built-in matrix name, falling back to reading a
// matrix file of that name.
func NewMatrix(nameOrPath string) (*Matrix, error) {
	m, err := MatrixLookup(nameOrPath)
	if err == nil {
		return m, nil
	}
	if _, statErr := os.Stat(nameOrPath); statErr == nil {
		return MatrixFromFile(nameOrPath)
	}
	return nil, err
}

// Owned reports whether Close will release the native allocation. Built-in
// matrices are shared static data and report false.
func (m *Matrix) Owned() bool {
	return m.ptr != 0 && m.c().userMatrix != nil
}

func (m *Matrix) Name() string {
	if m.ptr == 0 {
		return ""
	}
	return goString(m.c().name)
}

// Size is the dimension of the square score table.
func (m *Matrix) Size() int {
	if m.ptr == 0 {
		return 0
	}
	return int(m.c().size)
}

func (m *Matrix) Max() int {
	if m.ptr == 0 {
		return 0
	}
	return int(m.c().max)
}

func (m *Matrix) Min() int {
	if m.ptr == 0 {
		return 0
	}
	return int(m.c().min)
}

// At reads one cell of the score table.
func (m *Matrix) At(row, col int) (int, error) {
	n := m.Size()
	if row < 0 || row >= n {
		return 0, &IndexError{Index: row, Len: n}
	}
	if col < 0 || col >= n {
		return 0, &IndexError{Index: col, Len: n}
	}
	cells := unsafe.Slice(m.c().matrix, n*n)
	return int(cells[row*n+col]), nil
}

// Values copies the full score table. A closed matrix has no table and
// returns nil.
func (m *Matrix) Values() [][]int {
	n := m.Size()
	if n == 0 {
		return nil
	}
	cells := unsafe.Slice(m.c().matrix, n*n)
	out := make([][]int, n)
	for i := range out {
		row := make([]int, n)
		for j := range row {
			row[j] = int(cells[i*n+j])
		}
		out[i] = row
	}
	return out
}

// SetValue writes one cell. All mutation goes through the native set-value
// primitive; the matrix applies alphabet mapping internally, so writing the
// table memory directly would bypass it. Mutating a built-in matrix changes
// shared process-wide state; use Copy first for a private scheme.
func (m *Matrix) SetValue(row, col, value int) error {
	n := m.Size()
	if row < 0 || row >= n {
		return &IndexError{Index: row, Len: n}
	}
	if col < 0 || col >= n {
		return &IndexError{Index: col, Len: n}
	}
	m.lib.matrixSetValue(m.ptr, int32(row), int32(col), int32(value))
	return nil
}

// SetRow writes every cell of one row.
func (m *Matrix) SetRow(row, value int) error {
	return m.SetRange(row, 0, row, m.Size()-1, value)
}

// SetCol writes every cell of one column.
func (m *Matrix) SetCol(col, value int) error {
	return m.SetRange(0, col, m.Size()-1, col, value)
}

// SetRange writes the rectangle [row0,row1] x [col0,col1], inclusive.
func (m *Matrix) SetRange(row0, col0, row1, col1, value int) error {
	n := m.Size()
	for _, r := range []int{row0, row1} {
		if r < 0 || r >= n {
			return &IndexError{Index: r, Len: n}
		}
	}
	for _, c := range []int{col0, col1} {
		if c < 0 || c >= n {
			return &IndexError{Index: c, Len: n}
		}
	}
	for r := row0; r <= row1; r++ {
		for c := col0; c <= col1; c++ {
			m.lib.matrixSetValue(m.ptr, int32(r), int32(c), int32(value))
		}
	}
	return nil
}

// Copy makes an owned native-level duplicate, suitable for mutation without
// touching shared built-in data.
func (m *Matrix) Copy() (*Matrix, error) {
	if m.ptr == 0 {
		return nil, fmt.Errorf("parasail: copy of closed matrix")
	}
	p := m.lib.matrixCopy(m.ptr)
	if p == 0 {
		return nil, fmt.Errorf("parasail: matrix_copy failed")
	}
	return &Matrix{ptr: p, lib: m.lib}, nil
}

// Close releases the native allocation if this handle owns one. It is safe
// to call more than once; only the first call frees.
func (m *Matrix) Close() error {
	if m.ptr == 0 {
		return nil
	}
	if m.c().userMatrix != nil {
		m.lib.matrixFree(m.ptr)
	}
	m.ptr = 0
	return nil
}
