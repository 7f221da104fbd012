package parasail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCigar(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	r, err := NWTraceStriped16("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	c, err := r.Cigar()
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 0, c.BegQuery())
	assert.Equal(t, 0, c.BegRef())
	assert.Equal(t, "5=2I", c.Decode())

	ops := c.Seq()
	require.Len(t, ops, 2)
	op, err := CigarDecodeOp(ops[0])
	require.NoError(t, err)
	assert.Equal(t, byte('='), op)
	length, err := CigarDecodeLen(ops[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(5), length)
}

// The native cigar is constructed at most once per result, however many
// times it is asked for.
func TestCigarBuiltOnce(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	r, err := SWTrace("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	c1, err := r.Cigar()
	require.NoError(t, err)
	c2, err := r.Cigar()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, 1, f.cigarBuilds)
}

// Closing the result releases the cached cigar exactly once, even if the
// caller also closed the cigar.
func TestCigarFreedWithResult(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	r, err := SWTrace("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	c, err := r.Cigar()
	require.NoError(t, err)

	require.NoError(t, c.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, 1, f.cigarFrees)
	assert.Equal(t, 1, f.resultFrees)
}

func TestCigarNonTrace(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	r, err := NW("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Cigar()
	var cerr *CapabilityError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "trace", cerr.Cap)
}

func TestCigarEncode(t *testing.T) {
	newFake().install(t)

	packed, err := CigarEncode(7, 'X')
	require.NoError(t, err)
	op, err := CigarDecodeOp(packed)
	require.NoError(t, err)
	length, err := CigarDecodeLen(packed)
	require.NoError(t, err)
	assert.Equal(t, byte('X'), op)
	assert.Equal(t, uint32(7), length)
}
