package parasail

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixLookup(t *testing.T) {
	f := newFake()
	f.install(t)

	m, err := MatrixLookup("blosum62")
	require.NoError(t, err)
	assert.Equal(t, "blosum62", m.Name())
	assert.Equal(t, 24, m.Size())
	assert.False(t, m.Owned())

	// Closing a built-in matrix never reaches the native free.
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Zero(t, f.matrixFrees)
}

func TestMatrixLookupUnknown(t *testing.T) {
	newFake().install(t)

	_, err := MatrixLookup("blosum1000")
	require.Error(t, err)
}

func TestMatrixCreate(t *testing.T) {
	f := newFake()
	f.install(t)

	m, err := MatrixCreate("ACGT", 2, -3)
	require.NoError(t, err)
	assert.True(t, m.Owned())
	assert.Equal(t, 5, m.Size())

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -3, v)

	// An owned matrix is freed exactly once, no matter how often Close runs.
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.Equal(t, 1, f.matrixFrees)
}

func TestMatrixSetValue(t *testing.T) {
	f := newFake()
	f.install(t)

	m, err := MatrixCreate("ACGT", 1, -1)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.SetValue(1, 2, 7))
	assert.Equal(t, 1, f.setValueCalls)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	var ierr *IndexError
	require.ErrorAs(t, m.SetValue(m.Size(), 0, 0), &ierr)
	require.ErrorAs(t, m.SetValue(0, -1, 0), &ierr)
	// Out-of-range writes never reach the native primitive.
	assert.Equal(t, 1, f.setValueCalls)
}

func TestMatrixSetRange(t *testing.T) {
	f := newFake()
	f.install(t)

	m, err := MatrixCreate("ACGT", 1, -1)
	require.NoError(t, err)
	defer m.Close()

	n := m.Size()
	require.NoError(t, m.SetRow(0, 9))
	require.NoError(t, m.SetCol(n-1, 4))
	assert.Equal(t, 2*n, f.setValueCalls)

	for j := 0; j < n-1; j++ {
		v, err := m.At(0, j)
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	}
	v, err := m.At(0, n-1)
	require.NoError(t, err)
	assert.Equal(t, 4, v, "column write lands after the row write")

	var ierr *IndexError
	require.ErrorAs(t, m.SetRange(0, 0, n, 0, 1), &ierr)
}

// Mutating a built-in matrix would change shared process state; copying
// first yields a private, owned scheme.
func TestMatrixCopyBeforeMutate(t *testing.T) {
	f := newFake()
	f.install(t)

	shared, err := MatrixLookup("blosum62")
	require.NoError(t, err)

	private, err := shared.Copy()
	require.NoError(t, err)
	assert.True(t, private.Owned())

	require.NoError(t, private.SetValue(0, 0, 42))
	got, err := private.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	orig, err := shared.At(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, 42, orig)

	require.NoError(t, private.Close())
	require.NoError(t, shared.Close())
	assert.Equal(t, 1, f.matrixFrees)
}

// Accessors on a closed matrix degrade to zero values instead of touching
// freed native memory.
func TestMatrixClosedAccessors(t *testing.T) {
	newFake().install(t)

	m, err := MatrixCreate("ACGT", 1, -1)
	require.NoError(t, err)
	require.NoError(t, m.Close())

	assert.Empty(t, m.Name())
	assert.Zero(t, m.Size())
	assert.Zero(t, m.Max())
	assert.Zero(t, m.Min())
	assert.Nil(t, m.Values())
	_, err = m.At(0, 0)
	var ierr *IndexError
	require.ErrorAs(t, err, &ierr)
}

func TestMatrixFromFileMissing(t *testing.T) {
	newFake().install(t)

	_, err := MatrixFromFile(filepath.Join(t.TempDir(), "no-such-matrix"))
	require.Error(t, err)
}

func TestNewMatrix(t *testing.T) {
	newFake().install(t)

	m, err := NewMatrix("pam250")
	require.NoError(t, err)
	assert.False(t, m.Owned())

	path := filepath.Join(t.TempDir(), "custom.mat")
	require.NoError(t, os.WriteFile(path, []byte("# stub\n"), 0o644))
	m, err = NewMatrix(path)
	require.NoError(t, err)
	assert.True(t, m.Owned())
	require.NoError(t, m.Close())

	_, err = NewMatrix("not-a-matrix-or-file")
	require.Error(t, err)
}

func TestBuiltinHelpers(t *testing.T) {
	f := newFake()
	f.install(t)

	m1, err := Blosum62()
	require.NoError(t, err)
	m2, err := Blosum62()
	require.NoError(t, err)
	assert.NotSame(t, m1, m2)
	assert.Equal(t, m1.ptr, m2.ptr, "builtin lookups are cached")

	d, err := DNAFull()
	require.NoError(t, err)
	assert.Equal(t, "dnafull", d.Name())

	assert.Len(t, BuiltinMatrices(), 67)
	assert.Zero(t, f.matrixFrees)
}

// Closing one builtin handle must not invalidate later lookups of the same
// matrix; each lookup gets its own handle over the shared native data.
func TestBuiltinCloseThenReuse(t *testing.T) {
	f := newFake()
	f.install(t)

	m, err := Blosum62()
	require.NoError(t, err)
	require.NoError(t, m.Close())

	again, err := Blosum62()
	require.NoError(t, err)
	assert.Equal(t, "blosum62", again.Name())

	r, err := NW("MKVLA", "MKLA", 10, 1, again)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Zero(t, f.matrixFrees)
}
