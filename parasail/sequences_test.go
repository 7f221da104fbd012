package parasail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencesFromFile(t *testing.T) {
	f := newFake()
	f.install(t)

	s, err := SequencesFromFile("reads.fastq")
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 24, s.Characters())
	assert.Equal(t, 4, s.Shortest())
	assert.Equal(t, 12, s.Longest())
	assert.InDelta(t, 8.0, s.Mean(), 1e-6)
	assert.InDelta(t, 3.266, s.StdDev(), 1e-3)
}

func TestSequencesFromFileMissing(t *testing.T) {
	newFake().install(t)

	_, err := SequencesFromFile("missing.fa")
	require.Error(t, err)
}

func TestSequencesGet(t *testing.T) {
	newFake().install(t)

	s, err := SequencesFromFile("reads.fastq")
	require.NoError(t, err)
	defer s.Close()

	first, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "read1", first.Name())
	assert.Equal(t, "first record", first.Comment())
	assert.Equal(t, "ACGTACGT", first.Seq())
	assert.Empty(t, first.Qual())
	assert.Equal(t, 8, first.Len())

	second, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "IIII", second.Qual())

	// Negative indices count from the end.
	last, err := s.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, "read3", last.Name())

	var ierr *IndexError
	_, err = s.Get(s.Len())
	require.ErrorAs(t, err, &ierr)
	_, err = s.Get(-s.Len() - 1)
	require.ErrorAs(t, err, &ierr)
}

func TestSequenceAt(t *testing.T) {
	newFake().install(t)

	s, err := SequencesFromFile("reads.fastq")
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.Get(1)
	require.NoError(t, err)

	ch, err := rec.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), ch)
	ch, err = rec.At(-1)
	require.NoError(t, err)
	assert.Equal(t, byte('T'), ch)

	var ierr *IndexError
	_, err = rec.At(rec.Len())
	require.ErrorAs(t, err, &ierr)
}

func TestSequencesCloseIdempotent(t *testing.T) {
	f := newFake()
	f.install(t)

	s, err := SequencesFromFile("reads.fastq")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, f.sequencesFrees)
}
