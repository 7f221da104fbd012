package parasail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	m, err := MatrixLookup("blosum62")
	require.NoError(t, err)
	return m
}

func TestResultScoreOnly(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	r, err := SW("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, int(fakeScore("MKVLA", "MKLA", 10, 1)), r.Score())
	assert.Equal(t, 4, r.EndQuery())
	assert.Equal(t, 3, r.EndRef())
	assert.False(t, r.Saturated())
	assert.True(t, r.IsSW())
	assert.False(t, r.IsNW())

	// A score-only result refuses everything beyond the score.
	var cerr *CapabilityError
	_, err = r.Matches()
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "stats", cerr.Cap)
	_, err = r.ScoreTable()
	require.ErrorAs(t, err, &cerr)
	_, err = r.ScoreRow()
	require.ErrorAs(t, err, &cerr)
	_, err = r.Cigar()
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "trace", cerr.Cap)
}

func TestResultStats(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	r, err := NWStats("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	matches, err := r.Matches()
	require.NoError(t, err)
	assert.Equal(t, 2, matches)
	similar, err := r.Similar()
	require.NoError(t, err)
	assert.Equal(t, 3, similar)
	length, err := r.Length()
	require.NoError(t, err)
	assert.Equal(t, 5, length)

	// Stats without table still refuses table views.
	_, err = r.MatchesTable()
	var cerr *CapabilityError
	require.ErrorAs(t, err, &cerr)
}

func TestResultTableShape(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	query, ref := "MKVLA", "MKL"
	r, err := NWTable(query, ref, 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	tbl, err := r.ScoreTable()
	require.NoError(t, err)
	rows, cols := tbl.Dims()
	assert.Equal(t, len(query), rows)
	assert.Equal(t, len(ref), cols)

	// Plain table mode carries no stats tables.
	_, err = r.MatchesTable()
	var cerr *CapabilityError
	require.ErrorAs(t, err, &cerr)

	assert.Panics(t, func() { tbl.At(rows, 0) })
	assert.Panics(t, func() { tbl.At(0, -1) })
}

func TestResultStatsTable(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	r, err := SWStatsTableStriped16("MKVLA", "MKL", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	for _, get := range []func() (*Table, error){
		r.ScoreTable, r.MatchesTable, r.SimilarTable, r.LengthTable,
	} {
		tbl, err := get()
		require.NoError(t, err)
		rows, cols := tbl.Dims()
		assert.Equal(t, 5, rows)
		assert.Equal(t, 3, cols)
	}
	assert.True(t, r.IsStriped())
}

// The last row and column views agree with the full table along the shared
// boundary.
func TestResultRowcolConsistency(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	query, ref := "MKVLA", "MKL"
	tr, err := NWTable(query, ref, 10, 1, m)
	require.NoError(t, err)
	defer tr.Close()
	tbl, err := tr.ScoreTable()
	require.NoError(t, err)

	rr, err := NWRowcol(query, ref, 10, 1, m)
	require.NoError(t, err)
	defer rr.Close()

	row, err := rr.ScoreRow()
	require.NoError(t, err)
	col, err := rr.ScoreCol()
	require.NoError(t, err)
	require.Len(t, row, len(ref))
	require.Len(t, col, len(query))

	for j := range row {
		assert.Equal(t, tbl.At(len(query)-1, j), row[j])
	}
	for i := range col {
		assert.Equal(t, tbl.At(i, len(ref)-1), col[i])
	}
	assert.Equal(t, row[len(row)-1], col[len(col)-1])

	// Rowcol results carry no full table.
	_, err = rr.ScoreTable()
	var cerr *CapabilityError
	require.ErrorAs(t, err, &cerr)
}

func TestResultSaturated(t *testing.T) {
	f := newFake()
	f.saturate = true
	f.install(t)
	m := testMatrix(t)

	r8, err := SWStriped8("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r8.Close()
	assert.True(t, r8.Saturated())

	r16, err := SWStriped16("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r16.Close()
	assert.False(t, r16.Saturated())
}

func TestResultCloseIdempotent(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	r, err := NW("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 1, f.resultFrees)
}
